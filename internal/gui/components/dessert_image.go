package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

const DessertImageSize = 200

// DessertImage is the tappable picture of the dessert on sale.
type DessertImage struct {
	widget.BaseWidget

	image    *canvas.Image
	OnTapped func()
}

func NewDessertImage(res fyne.Resource, tapped func()) *DessertImage {
	img := canvas.NewImageFromResource(res)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(DessertImageSize, DessertImageSize))

	d := &DessertImage{image: img, OnTapped: tapped}
	d.ExtendBaseWidget(d)
	return d
}

func (d *DessertImage) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(d.image)
}

func (d *DessertImage) Tapped(*fyne.PointEvent) {
	if d.OnTapped != nil {
		d.OnTapped()
	}
}

func (d *DessertImage) Resource() fyne.Resource {
	return d.image.Resource
}

// SetResource swaps the picture, skipping the refresh when it is unchanged.
func (d *DessertImage) SetResource(res fyne.Resource) {
	if d.image.Resource == res {
		return
	}
	d.image.Resource = res
	d.image.Refresh()
}
