package generation

import "fmt"

// fragmentPrompt asks for exactly one question grounded on the given text.
func fragmentPrompt(textChunk string) string {
	return fmt.Sprintf(`You are a JSON quiz generator. Your ONLY output must be a single, valid JSON array containing exactly 1 question object. Do not output any other text, markdown, or explanations.
Each object in the JSON array must have this exact structure:
{
  "questionText": "The text of the question",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "correctAnswer": "The text of the correct option",
  "explanation": "A brief explanation"
}
The 'options' array MUST contain exactly 4 string values.
Generate 1 *diverse and distinct* multiple-choice question based *only* on the text provided below. Ensure it is not a rephrasing of a very similar question.
--- BEGIN TEXT ---
%s
--- END TEXT ---`, textChunk)
}

// topicPrompt asks for exactly one question from general knowledge of a topic.
func topicPrompt(topic string) string {
	return fmt.Sprintf(`You are a JSON quiz generator. Your ONLY output must be a single, valid JSON array containing exactly 1 question object. Do not output any other text, markdown, or explanations.
Each object in the JSON array must have this exact structure:
{
  "questionText": "The text of the question",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "correctAnswer": "The text of the correct option",
  "explanation": "A brief explanation"
}
The 'options' array MUST contain exactly 4 string values.
Generate 1 *diverse and distinct* multiple-choice question about the topic: "%s". Ensure it is not a rephrasing of a very similar question.`, topic)
}

// fullQuizPrompt asks for a complete quiz with a title and category in one
// response, used for topic-grounded generation.
func fullQuizPrompt(topic string, count int) string {
	return fmt.Sprintf(`IMPORTANT: Respond with ONLY a valid JSON object. Do NOT include any other text, explanations, or markdown formatting outside the JSON.
Generate a quiz about "%[1]s" with exactly %[2]d multiple-choice questions.
Each question must have exactly 4 distinct options, and one correct answer.
Strictly NO True/False questions. Ensure options are varied and not easily guessable by pattern.
Vary the position of the correct answer among the options so it is distributed randomly across all four positions.
If the topic is broad, generate questions covering diverse subtopics within it.
Respond with the following JSON structure. Adhere strictly to this schema:
{
  "title": "Suggested Quiz Title related to %[1]s",
  "category": "Suggested Category related to %[1]s",
  "questions": [
    {
      "questionText": "Example question text",
      "options": ["Example Option A", "Example Option B", "Example Option C", "Example Option D"],
      "correctAnswer": "Example Correct Answer Text",
      "explanation": "Example explanation for the correct answer."
    }
  ]
}`, topic, count)
}
