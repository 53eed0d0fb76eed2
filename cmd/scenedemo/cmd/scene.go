package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/go-drift/sceneui/pkg/core"
	"github.com/go-drift/sceneui/pkg/frame"
	"github.com/go-drift/sceneui/pkg/graphics"
	"github.com/go-drift/sceneui/pkg/input"
	"github.com/go-drift/sceneui/pkg/prompt"
	"github.com/go-drift/sceneui/pkg/render"
	"github.com/go-drift/sceneui/pkg/resources"
	"github.com/go-drift/sceneui/pkg/theme"
	"github.com/go-drift/sceneui/pkg/widgets"
)

const thumbnail = "images/scene-thumbnail.png"

// demo is the showcase scene with handles on the widgets the interactive
// view drives.
type demo struct {
	scene    *core.Scene
	loop     *frame.Loop
	registry *input.Registry

	fillIn *prompt.FillInPrompt
	option *prompt.OptionPrompt
	ok     *prompt.OkPrompt
	custom *prompt.Prompt

	announcement *widgets.Announcement
	loading      *widgets.Loading
	counter      *widgets.Counter
	bar          *widgets.ProgressBar

	// prompts lists the prompts in toggle order.
	prompts []modal
}

type modal interface {
	core.Widget
	Visible() bool
	Close()
}

// newDemo builds the scene. Callbacks log to events. Every prompt starts
// hidden so they can be opened one at a time.
func newDemo(res *resources.Table, events io.Writer) *demo {
	d := &demo{
		scene:    core.NewScene(),
		loop:     frame.NewLoop(),
		registry: input.NewRegistry(),
	}
	logf := func(format string, args ...any) {
		fmt.Fprintf(events, format+"\n", args...)
	}

	d.fillIn = prompt.NewFillInPrompt(prompt.FillInConfig{
		StartHidden: true,
		Title:       "What are you thinking?",
		OnAccept:    func(v string) { logf("fill-in accepted %q", v) },
		Registry:    d.registry,
		Resources:   res,
	})
	d.option = prompt.NewOptionPrompt(prompt.OptionConfig{
		StartHidden: true,
		Title:       "Pick an option!",
		Text:        "What will you choose?",
		OnAccept:    func() { logf("option accepted") },
		OnReject:    func() { logf("option rejected") },
		Registry:    d.registry,
		Resources:   res,
	})
	d.ok = prompt.NewOkPrompt(prompt.OkConfig{
		StartHidden: true,
		Text:        "This is an Ok Prompt",
		OnAccept:    func() { logf("ok accepted") },
		Registry:    d.registry,
		Resources:   res,
	})
	d.custom = newCustomPrompt(d.registry, res, logf)

	d.announcement = widgets.NewAnnouncement(widgets.AnnouncementConfig{
		Value:     "Text center",
		Offset:    &widgets.Offset{Y: 400},
		Scheduler: d.loop,
		Resources: res,
	})
	d.loading = widgets.NewLoading(widgets.LoadingConfig{
		StartHidden: true,
		Offset:      &widgets.Offset{Y: 300},
		Duration:    5 * time.Second,
		Scheduler:   d.loop,
		Resources:   res,
	})
	d.counter = widgets.NewCounter(widgets.CounterConfig{Value: 123, Resources: res})
	d.bar = widgets.NewProgressBar(widgets.ProgressBarConfig{
		Value:     0.5,
		Offset:    &widgets.Offset{X: -500, Y: 60},
		Resources: res,
	})

	d.scene.
		Add("fillInPrompt", d.fillIn).
		Add("optionPrompt", d.option).
		Add("okPrompt", d.ok).
		Add("customPrompt", d.custom).
		Add("announcement", d.announcement).
		Add("loadingIcon", d.loading).
		Add("smallIcon", widgets.NewSmallIcon(widgets.IconConfig{Image: thumbnail, Offset: &widgets.Offset{X: -30, Y: 150}})).
		Add("mediumIcon", widgets.NewMediumIcon(widgets.IconConfig{Image: thumbnail, Offset: &widgets.Offset{X: -30, Y: 210}})).
		Add("largeIcon", widgets.NewLargeIcon(widgets.IconConfig{Image: thumbnail, Offset: &widgets.Offset{X: -30, Y: 300}})).
		Add("uiCounter", d.counter).
		Add("cornerLabel", widgets.NewCornerLabel(widgets.CornerLabelConfig{
			Value:     "Label",
			Offset:    &widgets.Offset{X: -300, Y: 70},
			Resources: res,
		})).
		Add("uiBar", d.bar)

	d.prompts = []modal{d.fillIn, d.option, d.ok, d.custom}
	return d
}

func newCustomPrompt(reg input.ActionRegistry, res *resources.Table, logf func(string, ...any)) *prompt.Prompt {
	p := prompt.NewPrompt(prompt.Config{
		StartHidden:   true,
		Style:         theme.PromptDarkLarge,
		Width:         500,
		Height:        550,
		OnClose:       func() { logf("custom prompt closed") },
		HideCloseIcon: true,
		Registry:      reg,
		Resources:     res,
	})

	title := p.AddText(prompt.TextConfig{
		Value: "What will you do?",
		Y:     250,
		Color: graphics.ColorYellow,
		Size:  30,
	})
	title.Element.Label.TextAlign = render.AlignBottomCenter

	p.AddIcon(prompt.IconConfig{Image: thumbnail, Y: 128})

	body := p.AddText(prompt.TextConfig{Value: "It's an important decision", Y: 50})
	body.Element.Label.TextAlign = render.AlignTopRight

	box := p.AddTextBox(prompt.TextInputConfig{
		Placeholder: "Enter text",
		Y:           -20,
		OnChange:    func(v string) { logf("text box changed to %q", v) },
	})
	box.Element.Input.PlaceholderColor = graphics.ColorYellow

	check := p.AddCheckbox(prompt.CheckboxConfig{
		Text:      "Don't show again",
		X:         -80,
		Y:         -70,
		OnCheck:   func() { logf("checkbox checked") },
		OnUncheck: func() { logf("checkbox unchecked") },
	})
	check.Caption.Label.FontSize = 12

	sw := p.AddSwitch(prompt.SwitchConfig{
		Text:      "Turn me",
		X:         -60,
		Y:         -120,
		OnCheck:   func() { logf("switch on") },
		OnUncheck: func() { logf("switch off") },
	})
	sw.Caption.Label.Color = graphics.ColorGreen

	yeah := p.AddButton(prompt.ButtonConfig{
		Text:        "Yeah",
		X:           -100,
		Y:           -200,
		Style:       theme.ButtonE,
		OnMouseDown: func() { logf("yeah pressed") },
	})
	yeah.Caption.Label.Color = graphics.ColorYellow
	p.AddButton(prompt.ButtonConfig{
		Text:        "Nope",
		X:           100,
		Y:           -200,
		Style:       theme.ButtonF,
		OnMouseDown: func() { logf("nope pressed") },
	})

	return p
}

// render renders the whole scene.
func (d *demo) render() render.Node {
	return d.scene.Render("scene")
}

// togglePrompt shows prompt i and hides the others, or hides it if it is
// the one showing.
func (d *demo) togglePrompt(i int) {
	if i < 0 || i >= len(d.prompts) {
		return
	}
	wasVisible := d.prompts[i].Visible()
	for _, p := range d.prompts {
		p.Hide()
	}
	if !wasVisible {
		d.prompts[i].Show()
	}
}

// visiblePrompt returns the prompt currently showing, or nil.
func (d *demo) visiblePrompt() modal {
	for _, p := range d.prompts {
		if p.Visible() {
			return p
		}
	}
	return nil
}
