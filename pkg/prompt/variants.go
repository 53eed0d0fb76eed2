package prompt

import (
	"github.com/go-drift/sceneui/pkg/input"
	"github.com/go-drift/sceneui/pkg/resources"
	"github.com/go-drift/sceneui/pkg/theme"
)

// Variant sizes.
const (
	smallPromptWidth   = 400
	smallPromptHeight  = 250
	optionPromptWidth  = 480
	optionPromptHeight = 384
)

func variantStyle(dark bool) theme.PromptStyle {
	if dark {
		return theme.PromptDark
	}
	return theme.PromptLight
}

func orString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func orSize(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

// OkConfig configures an OkPrompt.
type OkConfig struct {
	StartHidden bool
	Text        string
	// TextSize defaults to 24.
	TextSize     float64
	UseDarkTheme bool
	// AcceptLabel defaults to "Ok".
	AcceptLabel string
	OnAccept    func()
	Registry    input.ActionRegistry
	Resources   *resources.Table
}

// OkPrompt shows a message and a single accept button bound to the primary
// action.
type OkPrompt struct {
	*Prompt
	Text         *Text
	AcceptButton *Button
}

// NewOkPrompt creates an OkPrompt.
func NewOkPrompt(cfg OkConfig) *OkPrompt {
	p := &OkPrompt{Prompt: NewPrompt(Config{
		StartHidden: cfg.StartHidden,
		Style:       variantStyle(cfg.UseDarkTheme),
		Width:       smallPromptWidth,
		Height:      smallPromptHeight,
		Registry:    cfg.Registry,
		Resources:   cfg.Resources,
	})}
	p.Text = p.AddText(TextConfig{Value: cfg.Text, Y: 40, Size: orSize(cfg.TextSize, 24)})
	p.AcceptButton = p.AddButton(ButtonConfig{
		Text:        orString(cfg.AcceptLabel, "Ok"),
		Y:           -70,
		OnMouseDown: cfg.OnAccept,
		Style:       theme.ButtonE,
	})
	return p
}

// OptionConfig configures an OptionPrompt.
type OptionConfig struct {
	StartHidden bool
	Title       string
	// TitleSize defaults to 24.
	TitleSize float64
	Text      string
	// TextSize defaults to 21.
	TextSize     float64
	UseDarkTheme bool
	// AcceptLabel defaults to "Yes" and RejectLabel to "No".
	AcceptLabel string
	RejectLabel string
	OnAccept    func()
	OnReject    func()
	Registry    input.ActionRegistry
	Resources   *resources.Table
}

// OptionPrompt asks a question with accept and reject buttons bound to the
// primary and secondary actions.
type OptionPrompt struct {
	*Prompt
	Title        *Text
	Text         *Text
	AcceptButton *Button
	RejectButton *Button
}

// NewOptionPrompt creates an OptionPrompt.
func NewOptionPrompt(cfg OptionConfig) *OptionPrompt {
	p := &OptionPrompt{Prompt: NewPrompt(Config{
		StartHidden: cfg.StartHidden,
		Style:       variantStyle(cfg.UseDarkTheme),
		Width:       optionPromptWidth,
		Height:      optionPromptHeight,
		Registry:    cfg.Registry,
		Resources:   cfg.Resources,
	})}
	p.Title = p.AddText(TextConfig{Value: cfg.Title, Y: 160, Size: orSize(cfg.TitleSize, 24)})
	p.Text = p.AddText(TextConfig{Value: cfg.Text, Y: 40, Size: orSize(cfg.TextSize, 21)})
	p.AcceptButton = p.AddButton(ButtonConfig{
		Text:        orString(cfg.AcceptLabel, "Yes"),
		X:           -100,
		Y:           -120,
		OnMouseDown: cfg.OnAccept,
		Style:       theme.ButtonE,
	})
	p.RejectButton = p.AddButton(ButtonConfig{
		Text:        orString(cfg.RejectLabel, "No"),
		X:           100,
		Y:           -120,
		OnMouseDown: cfg.OnReject,
		Style:       theme.ButtonF,
	})
	return p
}

// FillInConfig configures a FillInPrompt.
type FillInConfig struct {
	StartHidden bool
	Title       string
	// TitleSize defaults to 24.
	TitleSize    float64
	UseDarkTheme bool
	// Placeholder defaults to DefaultPlaceholder.
	Placeholder string
	// AcceptLabel defaults to "Submit".
	AcceptLabel string
	// OnAccept receives the text box value when the accept button fires.
	OnAccept  func(value string)
	Registry  input.ActionRegistry
	Resources *resources.Table
}

// FillInPrompt asks for a line of text.
type FillInPrompt struct {
	*Prompt
	Title        *Text
	TextBox      *TextInput
	AcceptButton *Button

	value string
}

// NewFillInPrompt creates a FillInPrompt.
func NewFillInPrompt(cfg FillInConfig) *FillInPrompt {
	p := &FillInPrompt{Prompt: NewPrompt(Config{
		StartHidden: cfg.StartHidden,
		Style:       variantStyle(cfg.UseDarkTheme),
		Width:       smallPromptWidth,
		Height:      smallPromptHeight,
		Registry:    cfg.Registry,
		Resources:   cfg.Resources,
	})}
	p.Title = p.AddText(TextConfig{Value: cfg.Title, Y: 90, Size: orSize(cfg.TitleSize, 24)})
	p.TextBox = p.AddTextBox(TextInputConfig{
		Placeholder: cfg.Placeholder,
		OnChange:    func(v string) { p.value = v },
	})
	p.AcceptButton = p.AddButton(ButtonConfig{
		Text: orString(cfg.AcceptLabel, "Submit"),
		Y:    -70,
		OnMouseDown: func() {
			if cfg.OnAccept != nil {
				cfg.OnAccept(p.value)
			}
		},
		Style: theme.ButtonE,
	})
	return p
}

// Value returns the text entered so far.
func (p *FillInPrompt) Value() string { return p.value }
