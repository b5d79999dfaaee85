// Package forms holds the static intake-form schema: for each (sport,
// category) pair an ordered list of field descriptors the customer client
// renders and the recommendation engine matches against. Pure data.
package forms

import "strings"

const (
	KindText   = "text"
	KindSelect = "select"
)

type Field struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Kind        string `json:"type"`
	Placeholder string `json:"placeholder,omitempty"`
	// Options is the ordered set of valid values for select fields. The
	// order is meaningful: graded scales (experience, flex) compare by
	// position.
	Options []string `json:"options,omitempty"`
}

// Common fields reused across categories.
var (
	height     = Field{Name: "height", Label: "Height", Kind: KindText, Placeholder: `e.g. 5'10"`}
	weight     = Field{Name: "weight", Label: "Weight", Kind: KindText, Placeholder: "e.g. 170 lbs"}
	experience = Field{Name: "experience", Label: "Experience Level", Kind: KindSelect,
		Options: []string{"Beginner", "Intermediate", "Advanced", "Expert"}}
	headCircumference = Field{Name: "headCircumference", Label: "Head Circumference (inches)", Kind: KindText, Placeholder: "e.g. 22.8"}
	footWidth         = Field{Name: "footWidth", Label: "Foot Width", Kind: KindSelect,
		Options: []string{"Narrow", "Medium", "Wide"}}
	volume = Field{Name: "volume", Label: "Foot Volume", Kind: KindSelect,
		Options: []string{"Low volume", "Medium volume", "High volume"}}
)

var schema = map[string]map[string][]Field{
	"surfing": {
		"boards": {
			height, weight, experience,
			{Name: "waveConditions", Label: "Preferred Wave Conditions", Kind: KindSelect, Options: []string{"Small waves (1-3ft)", "Medium waves (3-6ft)", "Large waves (6ft+)", "All conditions"}},
			{Name: "surfStyle", Label: "Surf Style", Kind: KindSelect, Options: []string{"Longboard cruising", "Shortboard performance", "All-around", "Big wave"}},
		},
		"wetsuits": {
			height, weight,
			{Name: "chestSize", Label: "Chest Size", Kind: KindText, Placeholder: `e.g. 38"`},
			{Name: "waterTemp", Label: "Water Temperature", Kind: KindSelect, Options: []string{"Warm (70°F+)", "Moderate (60-70°F)", "Cool (50-60°F)", "Cold (Below 50°F)"}},
			{Name: "thickness", Label: "Preferred Thickness", Kind: KindSelect, Options: []string{"2mm (Summer)", "3/2mm (Spring/Fall)", "4/3mm (Winter)", "5/4mm (Cold water)"}},
		},
		"fins": {
			{Name: "boardType", Label: "Board Type", Kind: KindSelect, Options: []string{"Longboard", "Shortboard", "Fish", "Funboard", "SUP"}},
			experience,
			{Name: "finSetup", Label: "Fin Setup", Kind: KindSelect, Options: []string{"Single fin", "Twin fin", "Thruster (3 fin)", "Quad (4 fin)", "2+1 (3 fin)", "Not sure"}},
			{Name: "surfStyle", Label: "Surf Style", Kind: KindSelect, Options: []string{"Cruising/noseriding", "High performance", "All-around", "Speed/drive", "Maneuverability"}},
			{Name: "waveType", Label: "Wave Type", Kind: KindSelect, Options: []string{"Small mushy waves", "Clean medium waves", "Powerful waves", "Mixed conditions"}},
			{Name: "finMaterial", Label: "Fin Material Preference", Kind: KindSelect, Options: []string{"Fiberglass (stiff)", "Plastic (flexible)", "Carbon fiber (high performance)", "Bamboo (eco-friendly)", "No preference"}},
		},
	},
	"skiing": {
		"snowboards": {
			height, weight,
			{Name: "bootSize", Label: "Boot Size", Kind: KindText, Placeholder: "e.g. 10"},
			experience,
			{Name: "ridingStyle", Label: "Riding Style", Kind: KindSelect, Options: []string{"All-mountain", "Freestyle", "Freeride", "Powder"}},
			{Name: "terrain", Label: "Preferred Terrain", Kind: KindSelect, Options: []string{"Groomed runs", "Park & pipe", "Backcountry", "Mixed terrain"}},
		},
		"skis": {
			height, weight,
			{Name: "bootSize", Label: "Boot Size", Kind: KindText, Placeholder: "e.g. 27.5"},
			experience,
			{Name: "skiType", Label: "Ski Type", Kind: KindSelect, Options: []string{"All-mountain", "Carving", "Freestyle", "Touring", "Racing"}},
			{Name: "terrain", Label: "Preferred Terrain", Kind: KindSelect, Options: []string{"Groomed runs", "Off-piste", "Park", "Backcountry"}},
		},
		"boots": {
			{Name: "footLength", Label: "Foot Length (cm)", Kind: KindText, Placeholder: "e.g. 28.5"},
			footWidth, experience,
			{Name: "flex", Label: "Preferred Flex", Kind: KindSelect, Options: []string{"Soft (60-80)", "Medium (80-100)", "Stiff (100-120)", "Very Stiff (120+)"}},
			volume,
		},
		"snowboard boots": {
			{Name: "footLength", Label: "Foot Length (inches)", Kind: KindText, Placeholder: "e.g. 11.2"},
			footWidth, experience,
			{Name: "flex", Label: "Preferred Flex", Kind: KindSelect, Options: []string{"Soft (3-5)", "Medium (5-7)", "Stiff (7-9)", "Very Stiff (9-10)"}},
			{Name: "lacingSystem", Label: "Lacing System", Kind: KindSelect, Options: []string{"Traditional laces", "BOA system", "Speed lacing", "Hybrid"}},
			{Name: "ridingStyle", Label: "Riding Style", Kind: KindSelect, Options: []string{"All-mountain", "Freestyle", "Freeride", "Powder"}},
			volume,
		},
		"ski boots": {
			{Name: "footLength", Label: "Foot Length (inches)", Kind: KindText, Placeholder: "e.g. 11.2"},
			{Name: "footWidth", Label: "Foot Width", Kind: KindSelect, Options: []string{`Narrow (3.9-3.94")`, `Medium (3.94-4.02")`, `Wide (4.02-4.17")`, `Extra Wide (4.17"+)`}},
			experience,
			{Name: "flex", Label: "Flex Rating", Kind: KindSelect, Options: []string{"Soft (60-80)", "Medium (80-100)", "Stiff (100-120)", "Very Stiff (120-140)", "Race (140+)"}},
			{Name: "skiType", Label: "Ski Type", Kind: KindSelect, Options: []string{"All-mountain", "Carving", "Racing", "Touring", "Freestyle"}},
			{Name: "calfWidth", Label: "Calf Width", Kind: KindSelect, Options: []string{"Narrow", "Medium", "Wide"}},
			volume,
		},
		"helmets": {
			headCircumference,
			{Name: "activity", Label: "Primary Activity", Kind: KindSelect, Options: []string{"Alpine skiing", "Snowboarding", "Freestyle", "Backcountry"}},
			{Name: "features", Label: "Desired Features", Kind: KindSelect, Options: []string{"Basic protection", "Ventilation system", "Audio compatibility", "Goggle integration"}},
		},
		"goggles": {
			{Name: "faceSize", Label: "Face Size", Kind: KindSelect, Options: []string{"Small", "Medium", "Large"}},
			{Name: "lensType", Label: "Lens Type", Kind: KindSelect, Options: []string{"Clear/Low light", "All conditions", "Sunny conditions", "Interchangeable"}},
			{Name: "fitType", Label: "Fit Type", Kind: KindSelect, Options: []string{"Asian fit", "Standard fit", "Wide fit"}},
		},
	},
	"skating": {
		"decks": {
			height,
			{Name: "shoeSize", Label: "Shoe Size", Kind: KindText, Placeholder: "e.g. 10"},
			experience,
			{Name: "skateStyle", Label: "Skating Style", Kind: KindSelect, Options: []string{"Street", "Vert", "Cruising", "Tricks"}},
			{Name: "deckWidth", Label: "Preferred Width", Kind: KindSelect, Options: []string{`7.5-7.75"`, `7.75-8.0"`, `8.0-8.25"`, `8.25-8.5"`, `8.5"+`}},
		},
		"trucks": {
			{Name: "deckWidth", Label: "Deck Width", Kind: KindText, Placeholder: `e.g. 8.0"`},
			{Name: "ridingStyle", Label: "Riding Style", Kind: KindSelect, Options: []string{"Street", "Vert", "Cruising", "All-around"}},
			{Name: "truckHeight", Label: "Truck Height", Kind: KindSelect, Options: []string{"Low", "Mid", "High"}},
		},
		"wheels": {
			{Name: "ridingStyle", Label: "Riding Style", Kind: KindSelect, Options: []string{"Street", "Vert", "Cruising", "Tricks"}},
			{Name: "surface", Label: "Primary Surface", Kind: KindSelect, Options: []string{"Smooth concrete", "Rough streets", "Skate parks", "Mixed terrain"}},
			{Name: "wheelSize", Label: "Preferred Size", Kind: KindSelect, Options: []string{"50-53mm (Street)", "54-58mm (All-around)", "59mm+ (Cruising)"}},
		},
		"helmets": {
			{Name: "headCircumference", Label: "Head Circumference (cm)", Kind: KindText, Placeholder: "e.g. 58"},
			{Name: "skateStyle", Label: "Skating Style", Kind: KindSelect, Options: []string{"Street", "Vert", "Bowl", "Cruising"}},
			{Name: "certifications", Label: "Certification Preference", Kind: KindSelect, Options: []string{"CPSC (Basic)", "ASTM (Skate specific)", "Dual certified"}},
		},
	},
}

// FieldsFor returns the ordered descriptors for a sport/category pair, or
// nil when the pair is unknown.
func FieldsFor(sport, category string) []Field {
	cats, ok := schema[norm(sport)]
	if !ok {
		return nil
	}
	return cats[norm(category)]
}

// KnownSport reports whether the sport has any categories defined.
func KnownSport(sport string) bool {
	_, ok := schema[norm(sport)]
	return ok
}

// KnownCategory reports whether the category is defined for the sport.
func KnownCategory(sport, category string) bool {
	cats, ok := schema[norm(sport)]
	if !ok {
		return false
	}
	_, ok = cats[norm(category)]
	return ok
}

// SportFields merges the descriptors of every category under a sport,
// first occurrence of a field name wins. Used when a recommendation
// request names only the sport.
func SportFields(sport string) []Field {
	cats, ok := schema[norm(sport)]
	if !ok {
		return nil
	}
	seen := map[string]bool{}
	var out []Field
	for _, cat := range categoryOrder(sport) {
		for _, f := range cats[cat] {
			if !seen[f.Name] {
				seen[f.Name] = true
				out = append(out, f)
			}
		}
	}
	return out
}

// Categories lists a sport's categories in a stable order.
func Categories(sport string) []string {
	return categoryOrder(sport)
}

var catOrder = map[string][]string{
	"surfing": {"boards", "wetsuits", "fins"},
	"skiing":  {"snowboards", "skis", "boots", "snowboard boots", "ski boots", "helmets", "goggles"},
	"skating": {"decks", "trucks", "wheels", "helmets"},
}

func categoryOrder(sport string) []string {
	return catOrder[norm(sport)]
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
