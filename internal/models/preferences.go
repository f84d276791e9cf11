package models

// Occasion the user is dressing for.
type Occasion string

const (
	OccasionWedding Occasion = "wedding"
	OccasionParty   Occasion = "party"
	OccasionWork    Occasion = "work"
	OccasionGym     Occasion = "gym"
	OccasionBeach   Occasion = "beach"
	OccasionTravel  Occasion = "travel"
	OccasionOuting  Occasion = "outing"
)

// Style of the requested look.
type Style string

const (
	StyleCasual  Style = "casual"
	StyleClassic Style = "classic"
	StyleModern  Style = "modern"
	StyleStreet  Style = "street"
	StyleSporty  Style = "sporty"
)

// Gender selects which keyword tables the composer uses.
// GenderUnspecified is a deliberate user answer ("doesn't matter"), distinct
// from an absent field which means the question has not been settled yet.
type Gender string

const (
	GenderMen         Gender = "men"
	GenderWomen       Gender = "women"
	GenderKids        Gender = "kids"
	GenderUnspecified Gender = "unspecified"
)

type Weather string

const (
	WeatherHot  Weather = "hot"
	WeatherCold Weather = "cold"
	WeatherMild Weather = "mild"
)

type Budget string

const (
	BudgetEconomy Budget = "economy"
	BudgetMid     Budget = "mid"
	BudgetPremium Budget = "premium"
)

type Fit string

const (
	FitOversized Fit = "oversized"
	FitSlim      Fit = "slim"
	FitRegular   Fit = "regular"
)

type Fabric string

const (
	FabricCotton    Fabric = "cotton"
	FabricPolyester Fabric = "polyester"
	FabricLycra     Fabric = "lycra"
	FabricWool      Fabric = "wool"
	FabricSilk      Fabric = "silk"
	FabricDenim     Fabric = "denim"
	FabricVelvet    Fabric = "velvet"
	FabricLinen     Fabric = "linen"
	FabricChiffon   Fabric = "chiffon"
	FabricSatin     Fabric = "satin"
	FabricViscose   Fabric = "viscose"
	FabricStretch   Fabric = "stretch"
)

// Preferences is the accumulated slot-filling record for one session.
// Every field is optional: nil means "not mentioned yet", which is different
// from any concrete value including GenderUnspecified.
type Preferences struct {
	Occasion *Occasion `json:"occasion,omitempty"`
	Style    *Style    `json:"style,omitempty"`
	Gender   *Gender   `json:"gender,omitempty"`
	Color    *string   `json:"color,omitempty"`
	Weather  *Weather  `json:"weather,omitempty"`
	Budget   *Budget   `json:"budget,omitempty"`
	Fit      *Fit      `json:"fit,omitempty"`
	Size     *string   `json:"size,omitempty"`
	Fabric   *Fabric   `json:"fabric,omitempty"`
	Opaque   *bool     `json:"opaque,omitempty"`
}

// Merge folds a newly extracted record into p. A field already set in p is
// only replaced when the new record carries a value for that same field;
// fields absent from in are left untouched. Nothing is ever cleared.
func (p *Preferences) Merge(in Preferences) {
	if in.Occasion != nil {
		p.Occasion = in.Occasion
	}
	if in.Style != nil {
		p.Style = in.Style
	}
	if in.Gender != nil {
		p.Gender = in.Gender
	}
	if in.Color != nil {
		p.Color = in.Color
	}
	if in.Weather != nil {
		p.Weather = in.Weather
	}
	if in.Budget != nil {
		p.Budget = in.Budget
	}
	if in.Fit != nil {
		p.Fit = in.Fit
	}
	if in.Size != nil {
		p.Size = in.Size
	}
	if in.Fabric != nil {
		p.Fabric = in.Fabric
	}
	if in.Opaque != nil {
		p.Opaque = in.Opaque
	}
}

// Empty reports whether no field has been set.
func (p Preferences) Empty() bool {
	return p.Occasion == nil && p.Style == nil && p.Gender == nil &&
		p.Color == nil && p.Weather == nil && p.Budget == nil &&
		p.Fit == nil && p.Size == nil && p.Fabric == nil && p.Opaque == nil
}
