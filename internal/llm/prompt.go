package llm

import "strings"

// BuildExtractionPrompt composes the instruction block sent to the remote
// model: the transcript, the exact output shape, and two worked examples.
// Worked examples matter more than prose for small instruction-tuned
// models, so keep them even if the schema section changes.
func BuildExtractionPrompt(transcript string) string {
	var b strings.Builder

	b.WriteString("Extract transaction from Nigerian market text. Return ONLY JSON.\n\n")
	b.WriteString("Text: \"")
	b.WriteString(transcript)
	b.WriteString("\"\n\n")

	b.WriteString("Output ONLY this JSON format:\n")
	b.WriteString(`{
  "type": "income|expense|debt",
  "item": "item or null",
  "quantity": number or null,
  "amount": number,
  "currency": "NGN",
  "method": "cash|pos|transfer|null",
  "person": "name or null",
  "date": null,
  "raw": "original text"
}`)
	b.WriteString("\n\nExamples:\n")
	b.WriteString(`"Sold 3 bags of rice for 15k cash" -> {"type":"income","item":"rice","quantity":3,"amount":15000,"currency":"NGN","method":"cash","person":null,"date":null,"raw":"Sold 3 bags of rice for 15k cash"}`)
	b.WriteString("\n")
	b.WriteString(`"I collect 5k from Ngozi" -> {"type":"income","item":null,"quantity":null,"amount":5000,"currency":"NGN","method":null,"person":"Ngozi","date":null,"raw":"I collect 5k from Ngozi"}`)
	b.WriteString("\n\nReturn ONLY JSON:")

	return b.String()
}
