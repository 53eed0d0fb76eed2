// Package prompt implements modal prompts: a themed background box that owns
// an ordered set of child controls.
//
// # Building a prompt
//
// Create a container with [NewPrompt], then add controls. Every AddX method
// returns the new control so it can be adjusted further:
//
//	p := prompt.NewPrompt(prompt.Config{Style: theme.PromptDarkLarge, Registry: reg})
//	p.AddText(prompt.TextConfig{Value: "Settings", Y: 160, Size: 24})
//	music := p.AddSwitch(prompt.SwitchConfig{Text: "Music", Y: 40})
//	p.AddButton(prompt.ButtonConfig{
//	    Text:        "Done",
//	    Y:           -120,
//	    Style:       theme.ButtonE,
//	    OnMouseDown: p.Hide,
//	})
//	music.Check()
//
// Control coordinates are relative to the prompt. Text is placed from the
// prompt centre with positive Y moving up. Buttons, text boxes and icons
// measure X from the left edge and Y from the bottom edge of a control
// centred in the prompt. Checkboxes and switches span the prompt width.
//
// # Visibility
//
// A control is displayed only while both it and its prompt are visible.
// Show and Hide on the prompt are forwarded to every control in insertion
// order. Controls added to a hidden prompt start hidden.
//
// Buttons styled [theme.ButtonE] or [theme.ButtonF] also bind the primary or
// secondary action on the configured [input.ActionRegistry], exactly while
// they are displayed.
//
// # Variants
//
// [OkPrompt], [OptionPrompt] and [FillInPrompt] are prompts pre-populated
// with a title, body text and accept/reject buttons.
package prompt
