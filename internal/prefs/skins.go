package prefs

// Skin is one selectable jar appearance.
type Skin struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Skins is the fixed catalog, in display order. "default" is what new
// users see.
var Skins = []Skin{
	{ID: "default", Name: "Classic"},
	{ID: "white", Name: "Classic White"},
	{ID: "violet", Name: "Violet Dream"},
	{ID: "yellow", Name: "Sunny Yellow"},
	{ID: "blue", Name: "Ocean Blue"},
	{ID: "cyan", Name: "Cyan Breeze"},
	{ID: "green", Name: "Forest Green"},
	{ID: "peach", Name: "Peach Sorbet"},
	{ID: "pink", Name: "Pink Bliss"},
	{ID: "purple", Name: "Purple Haze"},
}

// ValidSkin reports whether id names a catalog skin.
func ValidSkin(id string) bool {
	for _, s := range Skins {
		if s.ID == id {
			return true
		}
	}
	return false
}
