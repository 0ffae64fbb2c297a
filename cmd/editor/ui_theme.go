package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	panelColor  = color.RGBA{40, 40, 40, 255}
	buttonIdle  = color.RGBA{70, 70, 78, 255}
	buttonHover = color.RGBA{92, 92, 104, 255}
	buttonPress = color.RGBA{50, 50, 120, 255}
	labelColor  = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
)

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.White,
				Selected:            color.RGBA{255, 220, 120, 255},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{60, 60, 90, 255},
				SelectedBackground:  color.RGBA{50, 50, 120, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{28, 28, 28, 255}),
				Mask: solidNineSlice(color.RGBA{28, 28, 28, 255}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelColor),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(buttonIdle),
				Hover:   solidNineSlice(buttonHover),
				Pressed: solidNineSlice(buttonPress),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle: color.White,
			},
		},
	}
}
