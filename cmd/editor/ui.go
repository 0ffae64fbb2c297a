package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/platformer/obj"
	"golang.org/x/image/font/gofont/goregular"
)

type editorCallbacks struct {
	onKindSelected func(k obj.Kind)
	onToolSelected func(t Tool)
	onSave         func()
	onUndo         func()
	onPlay         func()
	onCopy         func()
	onPaste        func()
}

// BuildEditorUI lays out the left panel: entity palette, tools and file
// actions.
func BuildEditorUI(cb editorCallbacks, initialTool Tool) (*ebitenui.UI, *ToolBar) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, baseHeightEditor),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Left: 10, Right: 10, Bottom: 10}),
			),
		),
	)

	addPaletteSection(panel, &fontFace, cb.onKindSelected)
	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, cb.onToolSelected, initialTool)
	panel.AddChild(toolbarContainer)
	addActionsSection(panel, ui.PrimaryTheme, &fontFace, cb)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	ui.Container = root
	return ui, toolBar
}

func addPaletteSection(parent *widget.Container, fontFace *text.Face, onKindSelected func(k obj.Kind)) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Entities", fontFace, labelColor)))

	entries := make([]any, 0, len(obj.Kinds))
	for _, k := range obj.Kinds {
		entries = append(entries, k)
	}
	list := widget.NewList(
		widget.ListOpts.Entries(entries),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if k, ok := e.(obj.Kind); ok {
				return string(k)
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if onKindSelected == nil {
				return
			}
			if k, ok := args.Entry.(obj.Kind); ok {
				onKindSelected(k)
			}
		}),
	)
	parent.AddChild(list)
}

func addActionsSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, cb editorCallbacks) {
	parent.AddChild(widget.NewLabel(widget.LabelOpts.Text("Level", fontFace, labelColor)))

	textColor := &widget.ButtonTextColor{Idle: color.White, Disabled: color.Gray{Y: 128}}
	actions := []struct {
		label string
		fn    func()
	}{
		{"Save", cb.onSave},
		{"Undo", cb.onUndo},
		{"Play-test", cb.onPlay},
		{"Copy level", cb.onCopy},
		{"Paste level", cb.onPaste},
	}
	for _, a := range actions {
		fn := a.fn
		parent.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.label, fontFace, textColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(panelWidth-20, 28),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if fn != nil {
					fn()
				}
			}),
		))
	}
}
