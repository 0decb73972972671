// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultFace — растровый шрифт, не требующий файлов ассетов.
var DefaultFace font.Face = basicfont.Face7x13

var printer = message.NewPrinter(language.English)

// FormatNumber печатает число с разделителями разрядов: 12345 → "12,345".
func FormatNumber(n int) string {
	return printer.Sprintf("%d", n)
}

// DrawCentered рисует строку с центром в точке (x, y).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	bounds := text.BoundString(face, s)
	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y
	text.Draw(screen, s, face, x-w/2, y+h/2, clr)
}
