package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ResultsData drives the results and victory screens.
type ResultsData struct {
	Victory bool
	Frame   int
	Banner  *gween.Tween // Slides the title in; nil once settled
	BannerY float32
}

var Results = donburi.NewComponentType[ResultsData]()
