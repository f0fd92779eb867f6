package extraction

// DefaultInstruction is the fixed instruction sent ahead of the user's text.
const DefaultInstruction = `You extract action items from notes.
Return only the action items found in the text below, one per line, each starting with "- ".
Each action item must be a short, imperative task description.
Do not add explanations, headings, or any other text.
If there are no action items, return nothing.`

// Prompt is the payload handed to a ModelClient.
type Prompt struct {
	// Instruction is the system-level instruction for the model.
	Instruction string
	// Text is the caller's input, verbatim.
	Text string
}

// Render joins the instruction and text into a single prompt string for
// clients that do not support separate system and user messages.
func (p Prompt) Render() string {
	return p.Instruction + "\n\n" + p.Text
}

// BuildPrompt wraps text with DefaultInstruction. The text is neither
// modified nor truncated, and the output depends only on text.
func BuildPrompt(text string) Prompt {
	return Prompt{Instruction: DefaultInstruction, Text: text}
}
