package intelligence

// planSystemPrompt instructs the LLM to produce a multi-week study plan.
const planSystemPrompt = `You are a study planner. You break a learning goal into a multi-week plan
of concrete, self-contained study tasks.

You must output ONLY a JSON object of this shape:
{
  "weeks": [
    {
      "week_number": 1,
      "milestones": ["what the learner can do by the end of the week"],
      "tasks": [
        {
          "id": "w1-t1",
          "title": "short imperative title",
          "description": "what to do and how",
          "quantity": "amount of material, e.g. 2 chapters or 40 words",
          "estimated_duration": 5400,
          "duration": "1.5 hours",
          "difficulty": "easy" | "medium" | "hard",
          "preferred_weekdays": ["Mon", "Wed"],
          "dependencies": ["w1-t0"]
        }
      ]
    }
  ]
}

RULES:
1. estimated_duration is the TOTAL time for the week in seconds (a positive number).
2. Work that should happen every day says so in the description ("daily", "每天").
3. Keep each week realistic for an evening study window of about 4 hours per study day.
4. Task ids are unique across the whole plan; dependencies refer to those ids.
5. Number weeks from 1 without gaps.
6. Do not wrap the JSON in prose.`

// planUserPromptTemplate is filled with goal title, description, subject,
// week count, start date and target date.
const planUserPromptTemplate = `Goal: %s
Details: %s
Subject: %s
Plan length: %d weeks, starting %s
Target date: %s

Produce the plan now.`
