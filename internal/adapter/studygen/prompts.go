package studygen

import "github.com/tmc/langchaingo/prompts"

// Template variable names.
const (
	varTopic        = "topic"
	varNumQuestions = "num_ques"
	varContent      = "content"
)

var mcqPrompt = prompts.NewPromptTemplate(
	"You are a helpful assistant who generates MCQs with perfect formatting.\n"+
		"Generate {{.num_ques}} multiple-choice questions on the topic: {{.topic}}.\n\n"+
		"Format STRICTLY like this:\n"+
		"1. Question text?\n"+
		"A. Option A\n"+
		"B. Option B\n"+
		"C. Option C\n"+
		"D. Option D\n\n"+
		"Include the correct answer after each question in this format:\n"+
		"Answer: Option Letter (e.g., A, B, C, or D)\n\n"+
		"Leave a blank line between each question.\n"+
		"Start now:",
	[]string{varTopic, varNumQuestions},
)

var explanationPrompt = prompts.NewPromptTemplate(
	"You are an expert educational assistant that provides accurate, detailed, and well-structured explanations.\n"+
		"Write a comprehensive explanation on the following topic:\n\n"+
		"Topic: {{.topic}}\n\n"+
		"Your explanation should include:\n"+
		"1. An introduction to the topic.\n"+
		"2. Key concepts and definitions.\n"+
		"3. Important subtopics or components.\n"+
		"4. Use cases or applications (if any).\n"+
		"5. A conclusion summarizing the topic.",
	[]string{varTopic},
)

var shortNotesPrompt = prompts.NewPromptTemplate(
	"You are an expert at creating concise, high-yield revision notes for interviews.\n\n"+
		"Given the following topic content:\n"+
		"{{.content}}\n\n"+
		"Generate short notes that:\n"+
		"1. Are crystal-clear, logically organized, and perfect for quick last-minute interview revision.\n"+
		"2. Cover all essential points: definitions, formulas, facts, code patterns, best practices, and key takeaways.\n"+
		"3. Use UPPER CASE keyword-based headers ending with a colon, like:\n"+
		"   - DEFINITIONS:\n"+
		"   - KEY CONCEPTS:\n"+
		"   - SYNTAX/CODE EXAMPLES:\n"+
		"   - COMMON MISTAKES:\n"+
		"   - BEST PRACTICES / TIPS:\n\n"+
		"4. Present information using numbered or dash-based bullet points (no markdown or asterisks).\n"+
		"5. Be concise and free from fluff, every line should deliver value.\n"+
		"6. If code is relevant, include 1-2 line Python/C++/Java-style snippets or syntax references.\n\n"+
		"The output must resemble clean, handwritten notes ready for printing or PDF generation.\n"+
		"Avoid paragraphs. Focus on clarity, structure, and usefulness.",
	[]string{varContent},
)

var tutorialPrompt = prompts.NewPromptTemplate(
	"You are a professional computer science educator and technical content writer.\n"+
		"Create a comprehensive, well-formatted tutorial on the topic: '{{.topic}}'.\n\n"+
		"Your tutorial must be rich and detailed enough to span at least 15 A4 pages when converted to PDF.\n"+
		"End every section heading with a colon on its own line and use triple backticks for code blocks.\n"+
		"Start practical advice lines with 'Tip:'.\n\n"+
		"Structure the tutorial as follows:\n\n"+
		"1. Introduction and Importance\n"+
		"   - Briefly define the topic.\n"+
		"   - Explain why it is significant in both academic and real-world scenarios.\n"+
		"   - List real-world use cases and applications.\n\n"+
		"2. Major Subtopics\n"+
		"   - List and explain 5-7 fundamental subtopics.\n"+
		"   - For each subtopic explain the theory and provide commented, practical code examples in the most relevant programming language.\n\n"+
		"3. Advanced Concepts\n"+
		"   - List and explain 3-5 advanced subtopics with real-world relevance and clean, well-commented code examples.\n\n"+
		"4. Medium-Level Practice Questions\n"+
		"   - Provide at least 5 medium-difficulty coding or conceptual questions.\n"+
		"   - For each question state it clearly, explain the solution step by step over several paragraphs and add clean, well-commented code.\n\n"+
		"5. Advanced-Level Questions\n"+
		"   - Provide at least 5 advanced-level coding/design questions with a detailed multi-step explanation and optimized, commented code.\n\n"+
		"6. Top 20 Interview Questions and Answers\n"+
		"   - List 20 commonly asked interview questions related to this topic.\n"+
		"   - Give each a detailed and helpful answer of 2-3 paragraphs with examples, real-world context and code snippets in triple backticks where relevant.\n\n"+
		"7. Conclusion and Summary\n"+
		"   - Recap key concepts.\n"+
		"   - Share best practices, common mistakes, and pro tips.\n"+
		"   - Suggest next steps for further learning or exploration.\n\n"+
		"Make content educational, beginner-friendly, technically rich and verbose enough to span at least 10 pages in PDF form.",
	[]string{varTopic},
)
