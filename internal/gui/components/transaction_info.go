package components

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// TransactionInfo shows the running totals under the dessert.
type TransactionInfo struct {
	container    *fyne.Container
	soldValue    *widget.Label
	revenueValue *widget.Label
}

func NewTransactionInfo(soldTitle, revenueTitle string) *TransactionInfo {
	soldValue := widget.NewLabelWithStyle("0", fyne.TextAlignTrailing, fyne.TextStyle{})
	revenueValue := widget.NewLabelWithStyle("", fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})

	rows := container.NewVBox(
		container.NewBorder(nil, nil, widget.NewLabel(soldTitle), soldValue),
		container.NewBorder(nil, nil,
			widget.NewLabelWithStyle(revenueTitle, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			revenueValue),
	)

	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))

	return &TransactionInfo{
		container:    container.NewStack(background, container.NewPadded(rows)),
		soldValue:    soldValue,
		revenueValue: revenueValue,
	}
}

func (ti *TransactionInfo) GetContainer() *fyne.Container {
	return ti.container
}

func (ti *TransactionInfo) SetSold(sold int) {
	ti.soldValue.SetText(strconv.Itoa(sold))
}

func (ti *TransactionInfo) SetRevenue(revenue string) {
	ti.revenueValue.SetText(revenue)
}

func (ti *TransactionInfo) SoldText() string {
	return ti.soldValue.Text
}

func (ti *TransactionInfo) RevenueText() string {
	return ti.revenueValue.Text
}
