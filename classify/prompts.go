package classify

// Prompts ask for exactly one canonical token. Completions are still
// normalized defensively before comparison.

const intentPrompt = `Your task is to classify the user's input into one of the following categories:

- conversation: greetings, small talk, or general questions about you, the system, or data storage (e.g., "hello", "how are you", "who are you", "where do you store data?")
- vulgar: profanity, insults, or otherwise inappropriate language
- candidate: technical queries about candidates, their skills, education, work experience, projects, requests for a candidate's CV or resume, or any question that would require searching the candidate database (e.g., "show me candidates with Python skills", "who studied at Harvard?", "find candidates with 3+ years experience")

User input: "%s"

Return only one word: conversation, vulgar or candidate.

Do not explain. Do not include punctuation or extra words. Return just the category name.`

const followupPrompt = `You are a classifier. Determine if the following user query is a follow-up question that refers to previous results or context (e.g., uses words like 'their', 'those', 'them', 'the above', 'the previous', etc.), or if it is a standalone question.

User query: "%s"

Return only one word: followup or standalone.`
