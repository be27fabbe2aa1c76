package agg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func sampleA() *Stats {
	s := NewStats()
	s.Update([]string{"снег", "лёд"}, []string{"зима", "зима", "холод"}, intPtr(2), 2007)
	return s
}

func sampleB() *Stats {
	s := NewStats()
	s.Update([]string{"снег"}, []string{"весна"}, intPtr(0), 2008)
	s.Update([]string{"река"}, []string{"вода", "зима"}, nil, 2007)
	return s
}

func sampleC() *Stats {
	s := NewStats()
	s.Update([]string{"лёд", "гора"}, []string{"камень"}, intPtr(5), 0)
	return s
}

func merged(parts ...*Stats) *Stats {
	out := NewStats()
	for _, p := range parts {
		out.Merge(p)
	}
	return out
}

func TestUpdate(t *testing.T) {
	s := sampleA()

	assert.Equal(t, map[string]int{"снег": 1, "лёд": 1}, s.Title)
	assert.Equal(t, map[string]int{"зима": 2, "холод": 1}, s.Text)
	assert.Equal(t, map[int]int{2: 1}, s.Bytes)
	assert.Equal(t, map[int]int{2007: 1}, s.Time)
	assert.Equal(t, 1, s.Pages())
}

func TestUpdate_NoBucketNoYear(t *testing.T) {
	s := NewStats()
	s.Update([]string{"слово"}, []string{"текст"}, nil, 0)

	assert.Empty(t, s.Bytes)
	assert.Empty(t, s.Time)
	assert.Equal(t, 0, s.Pages())
}

func TestUpdate_ZeroBucketIsCounted(t *testing.T) {
	s := NewStats()
	s.Update(nil, nil, intPtr(0), 2000)
	assert.Equal(t, map[int]int{0: 1}, s.Bytes)
}

func TestUpdate_ConcatenationEquivalence(t *testing.T) {
	titles1, texts1 := []string{"один", "два"}, []string{"три"}
	titles2, texts2 := []string{"два"}, []string{"три", "четыре"}

	twice := NewStats()
	twice.Update(titles1, texts1, nil, 0)
	twice.Update(titles2, texts2, nil, 0)

	once := NewStats()
	once.Update(append(titles1, titles2...), append(texts1, texts2...), nil, 0)

	assert.Equal(t, once.Title, twice.Title)
	assert.Equal(t, once.Text, twice.Text)
}

func TestMerge_Commutative(t *testing.T) {
	ab := merged(sampleA(), sampleB())
	ba := merged(sampleB(), sampleA())
	assert.True(t, ab.Equal(ba))
}

func TestMerge_Associative(t *testing.T) {
	left := merged(sampleA(), sampleB())
	left.Merge(sampleC())

	right := sampleA()
	right.Merge(merged(sampleB(), sampleC()))

	other := sampleB()
	other.Merge(merged(sampleA(), sampleC()))

	assert.True(t, left.Equal(right))
	assert.True(t, left.Equal(other))
}

func TestMerge_KeyWiseSum(t *testing.T) {
	s := merged(sampleA(), sampleB())

	assert.Equal(t, map[string]int{"снег": 2, "лёд": 1, "река": 1}, s.Title)
	assert.Equal(t, map[string]int{"зима": 3, "холод": 1, "весна": 1, "вода": 1}, s.Text)
	assert.Equal(t, map[int]int{0: 1, 2: 1}, s.Bytes)
	assert.Equal(t, map[int]int{2007: 2, 2008: 1}, s.Time)
	assert.Equal(t, 3, s.Pages())
}

func TestMerge_DisjointIsUnion(t *testing.T) {
	a := NewStats()
	a.Update([]string{"альфа"}, []string{"бета"}, intPtr(1), 2001)
	b := NewStats()
	b.Update([]string{"гамма"}, []string{"дельта"}, intPtr(3), 2002)

	s := merged(a, b)
	assert.Equal(t, map[string]int{"альфа": 1, "гамма": 1}, s.Title)
	assert.Equal(t, map[string]int{"бета": 1, "дельта": 1}, s.Text)
	assert.Equal(t, map[int]int{1: 1, 3: 1}, s.Bytes)
	assert.Equal(t, map[int]int{2001: 1, 2002: 1}, s.Time)
}

func TestMerge_NilAndEmpty(t *testing.T) {
	s := sampleA()
	before := s.Clone()

	s.Merge(nil)
	s.Merge(NewStats())
	assert.True(t, s.Equal(before))
}

func TestClone_IsDeep(t *testing.T) {
	s := sampleA()
	c := s.Clone()
	c.Update([]string{"новое"}, nil, nil, 1999)

	assert.NotContains(t, s.Title, "новое")
	assert.NotContains(t, s.Time, 1999)
	assert.False(t, s.Equal(c))
}

func fixtureStats() *Stats {
	return &Stats{
		Title: map[string]int{"снегири": 2, "гири": 3},
		Text:  map[string]int{"вополе": 4, "берёзка": 9, "стояла": 5},
		Bytes: map[int]int{1: 3},
		Time:  map[int]int{2016: 3},
	}
}

func TestUpdate_Fixture(t *testing.T) {
	tests := []struct {
		name     string
		title    []string
		text     []string
		bucket   *int
		year     int
		expected *Stats
	}{
		{
			name:   "words bucket and year",
			title:  []string{"снегири", "онигири"},
			text:   []string{"берёзка", "берёзка", "грёзка"},
			bucket: intPtr(1),
			year:   2017,
			expected: &Stats{
				Title: map[string]int{"снегири": 3, "гири": 3, "онигири": 1},
				Text:  map[string]int{"вополе": 4, "берёзка": 11, "стояла": 5, "грёзка": 1},
				Bytes: map[int]int{1: 4},
				Time:  map[int]int{2016: 3, 2017: 1},
			},
		},
		{
			name:  "no bucket",
			title: []string{"лошадка"},
			text:  []string{"крюк"},
			year:  852,
			expected: &Stats{
				Title: map[string]int{"снегири": 2, "гири": 3, "лошадка": 1},
				Text:  map[string]int{"вополе": 4, "берёзка": 9, "стояла": 5, "крюк": 1},
				Bytes: map[int]int{1: 3},
				Time:  map[int]int{2016: 3, 852: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fixtureStats()
			s.Update(tt.title, tt.text, tt.bucket, tt.year)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestMerge_Fixture(t *testing.T) {
	s := fixtureStats()
	s.Merge(&Stats{
		Title: map[string]int{"снегири": 1, "пасхалка": 6001},
		Text:  map[string]int{"сантехник": 2, "лемонграсс": 3, "берёзка": 4},
		Bytes: map[int]int{0: 2, 2: 1},
		Time:  map[int]int{2016: 1, 2001: 2},
	})
	assert.Equal(t, &Stats{
		Title: map[string]int{"снегири": 3, "гири": 3, "пасхалка": 6001},
		Text:  map[string]int{"вополе": 4, "берёзка": 13, "стояла": 5, "сантехник": 2, "лемонграсс": 3},
		Bytes: map[int]int{0: 2, 1: 3, 2: 1},
		Time:  map[int]int{2016: 4, 2001: 2},
	}, s)

	s = fixtureStats()
	s.Merge(&Stats{
		Text:  map[string]int{"многословный": 123456789},
		Bytes: map[int]int{4: 1},
		Time:  map[int]int{2016: 1},
	})
	assert.Equal(t, &Stats{
		Title: map[string]int{"снегири": 2, "гири": 3},
		Text:  map[string]int{"вополе": 4, "берёзка": 9, "стояла": 5, "многословный": 123456789},
		Bytes: map[int]int{1: 3, 4: 1},
		Time:  map[int]int{2016: 4},
	}, s)
}
