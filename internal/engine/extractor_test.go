package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khayt/stylist-bot/internal/models"
)

func TestExtractEmptyUtterance(t *testing.T) {
	p := Extract("")
	assert.True(t, p.Empty())
}

func TestExtractPartyStreetBlack(t *testing.T) {
	p := Extract("عايز لبس حفلة ستريت بالأسود")

	require.NotNil(t, p.Occasion)
	assert.Equal(t, models.OccasionParty, *p.Occasion)
	require.NotNil(t, p.Style)
	assert.Equal(t, models.StyleStreet, *p.Style)
	require.NotNil(t, p.Color)
	assert.Equal(t, "أسود", *p.Color)

	assert.Nil(t, p.Gender)
	assert.Nil(t, p.Weather)
	assert.Nil(t, p.Budget)
	assert.Nil(t, p.Fit)
	assert.Nil(t, p.Size)
	assert.Nil(t, p.Fabric)
	assert.Nil(t, p.Opaque)
}

func TestExtractSetsMultipleFieldsAtOnce(t *testing.T) {
	p := Extract("لبس اسود كلاسيك لفرح")

	require.NotNil(t, p.Occasion)
	assert.Equal(t, models.OccasionWedding, *p.Occasion)
	require.NotNil(t, p.Style)
	assert.Equal(t, models.StyleClassic, *p.Style)
	require.NotNil(t, p.Color)
	assert.Equal(t, "أسود", *p.Color)
	assert.Nil(t, p.Gender)
	assert.Nil(t, p.Fabric)
}

func TestExtractEnglishTokens(t *testing.T) {
	p := Extract("I want a casual black look for work, men section")

	require.NotNil(t, p.Occasion)
	assert.Equal(t, models.OccasionWork, *p.Occasion)
	require.NotNil(t, p.Style)
	assert.Equal(t, models.StyleCasual, *p.Style)
	require.NotNil(t, p.Gender)
	assert.Equal(t, models.GenderMen, *p.Gender)
	require.NotNil(t, p.Color)
	assert.Equal(t, "أسود", *p.Color)
}

// Declaration order decides ties, not order of appearance in the text: the
// gym rule precedes the work rule, so a message naming both lands on gym.
func TestExtractDeclarationOrderWins(t *testing.T) {
	p := Extract("محتاج لبس للشغل وبعدها الجيم")

	require.NotNil(t, p.Occasion)
	assert.Equal(t, models.OccasionGym, *p.Occasion)
}

func TestExtractWorkoutDoesNotHitWork(t *testing.T) {
	p := Extract("need something for my workout")

	require.NotNil(t, p.Occasion)
	assert.Equal(t, models.OccasionGym, *p.Occasion)
}

func TestExtractWomenBeforeMen(t *testing.T) {
	// "women" contains the token "men"; the women rule is declared first.
	p := Extract("looking for women jackets")

	require.NotNil(t, p.Gender)
	assert.Equal(t, models.GenderWomen, *p.Gender)
}

func TestExtractRawSizeToken(t *testing.T) {
	p := Extract("عندكم مقاس xl من ده؟")

	require.NotNil(t, p.Size)
	assert.Equal(t, "XL", *p.Size)
}

func TestExtractNamedSizeBeatsRawToken(t *testing.T) {
	p := Extract("مقاس لارج او xl")

	require.NotNil(t, p.Size)
	assert.Equal(t, "large", *p.Size)
}

func TestExtractOpaque(t *testing.T) {
	tests := []struct {
		name      string
		utterance string
		want      bool
	}{
		{"negated", "عايزة حاجة مش شفافة", true},
		{"modest", "محتاجة لبس محتشم", true},
		{"sheer", "بلوزة شفافة شوية", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Extract(tt.utterance)
			require.NotNil(t, p.Opaque)
			assert.Equal(t, tt.want, *p.Opaque)
		})
	}
}

func TestExtractWeatherAndBudgetAndFabric(t *testing.T) {
	p := Extract("الجو برد وعايز حاجة قطن رخيصة")

	require.NotNil(t, p.Weather)
	assert.Equal(t, models.WeatherCold, *p.Weather)
	require.NotNil(t, p.Budget)
	assert.Equal(t, models.BudgetEconomy, *p.Budget)
	require.NotNil(t, p.Fabric)
	assert.Equal(t, models.FabricCotton, *p.Fabric)
}

// "حريمي" starts with the letters of the hot-weather token "حر"; the hot
// rule only carries longer tokens so gender must not leak into weather.
func TestExtractWomenTokenDoesNotSetWeather(t *testing.T) {
	p := Extract("عايزة لبس حريمي")

	require.NotNil(t, p.Gender)
	assert.Equal(t, models.GenderWomen, *p.Gender)
	assert.Nil(t, p.Weather)
}
