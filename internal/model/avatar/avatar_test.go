package avatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		name     string
		imageURL string
	}{
		{
			"Abraham Baker.png",
			"Abraham Baker",
			BaseURL + "Abraham%20Baker.png",
		},
		{
			"Adriana O'Sullivan.png",
			"Adriana O'Sullivan",
			BaseURL + "Adriana%20O'Sullivan.png",
		},
		{
			"Lily-Rose Chedjou.png",
			"Lily-Rose Chedjou",
			BaseURL + "Lily-Rose%20Chedjou.png",
		},
		{
			"portrait.jpeg",
			"portrait",
			BaseURL + "portrait.jpeg",
		},
		{
			"noextension",
			"noextension",
			BaseURL + "noextension",
		},
	}

	for _, tt := range tests {
		a := FromFilename(tt.filename)
		assert.Equal(t, tt.name, a.Name)
		assert.Equal(t, tt.imageURL, a.ImageURL)
	}
}

func TestFilenameRoundTrip(t *testing.T) {
	a := FromFilename("Abraham Baker.png")
	assert.Equal(t, "Abraham Baker.png", a.Filename())
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "png", FromFilename("Abraham Baker.png").Extension())
	assert.Equal(t, "jpeg", FromFilename("portrait.jpeg").Extension())
}

func TestSeedPreservesOrder(t *testing.T) {
	avatars := Seed()
	assert.Equal(t, len(seedFilenames), len(avatars))
	assert.Equal(t, "Abraham Baker", avatars[0].Name)
	assert.Equal(t, "Adem Lane", avatars[1].Name)
	assert.Equal(t, "Zuzanna Burke", avatars[len(avatars)-1].Name)
}

func TestMemoryStoreFindByName(t *testing.T) {
	store := NewMemoryStore(Seed())

	a, ok := store.FindByName("olivia rhye")
	assert.True(t, ok)
	assert.Equal(t, "Olivia Rhye", a.Name)

	a, ok = store.FindByName("OLIVIA RHYE")
	assert.True(t, ok)
	assert.Equal(t, "Olivia Rhye", a.Name)

	_, ok = store.FindByName("doesnotexist")
	assert.False(t, ok)
}

func TestMemoryStoreDuplicateNamesLastWins(t *testing.T) {
	first := Avatar{Name: "Twin", ImageURL: BaseURL + "Twin.png"}
	second := Avatar{Name: "twin", ImageURL: BaseURL + "twin.jpg"}
	store := NewMemoryStore([]Avatar{first, second})

	// Both entries stay in the ordered list; the index keeps the later one.
	assert.Equal(t, 2, store.Len())
	a, ok := store.FindByName("TWIN")
	assert.True(t, ok)
	assert.Equal(t, second, a)
}

func TestMemoryStoreAllReturnsCopy(t *testing.T) {
	store := NewMemoryStore(Seed())

	items := store.All()
	items[0] = Avatar{Name: "mutated"}

	again := store.All()
	assert.Equal(t, "Abraham Baker", again[0].Name)
}

func TestMemoryStoreEmpty(t *testing.T) {
	store := NewMemoryStore(nil)
	assert.Equal(t, 0, store.Len())
	assert.Empty(t, store.All())
	_, ok := store.FindByName("anything")
	assert.False(t, ok)
}
