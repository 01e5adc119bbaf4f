package insights

// Weighted sentiment lexicons. Superlatives carry more weight than mild
// terms. Lookups are exact-word and case-insensitive (tokens are
// lower-cased before lookup); there is no stemming.

var positiveLexicon = map[string]float64{
	"good":        1.0,
	"nice":        1.0,
	"fine":        0.8,
	"okay":        0.5,
	"decent":      0.8,
	"useful":      1.2,
	"helpful":     1.2,
	"great":       1.5,
	"enjoyable":   1.3,
	"pleasant":    1.2,
	"happy":       1.3,
	"satisfied":   1.4,
	"love":        1.8,
	"loved":       1.8,
	"like":        0.9,
	"liked":       0.9,
	"excellent":   2.0,
	"amazing":     2.0,
	"awesome":     2.0,
	"wonderful":   2.0,
	"fantastic":   2.0,
	"outstanding": 2.0,
	"perfect":     2.0,
	"brilliant":   1.9,
	"superb":      1.9,
	"best":        1.8,
	"impressive":  1.5,
	"clear":       1.0,
	"easy":        1.1,
	"smooth":      1.1,
	"fast":        0.9,
	"recommend":   1.4,
	"absolutely":  1.2, // also an intensifier; counts as a positive match on its own
	"thanks":      1.0,
	"thank":       1.0,
}

var negativeLexicon = map[string]float64{
	"bad":           1.0,
	"poor":          1.2,
	"mediocre":      0.9,
	"slow":          0.9,
	"boring":        1.1,
	"confusing":     1.2,
	"unclear":       1.1,
	"difficult":     1.0,
	"hard":          0.8,
	"annoying":      1.3,
	"frustrating":   1.5,
	"frustrated":    1.5,
	"disappointing": 1.6,
	"disappointed":  1.6,
	"hate":          1.8,
	"hated":         1.8,
	"dislike":       1.2,
	"useless":       1.7,
	"broken":        1.4,
	"terrible":      2.0,
	"horrible":      2.0,
	"awful":         2.0,
	"worst":         2.0,
	"dreadful":      1.9,
	"waste":         1.6,
	"buggy":         1.4,
	"unusable":      1.8,
	"problem":       1.0,
	"problems":      1.0,
	"issues":        1.0,
	"missing":       0.9,
	"lacking":       1.0,
}

// negationWords flip the sign of the sentiment word immediately after them.
var negationWords = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"none":    true,
	"nothing": true,
	"nobody":  true,
	"nowhere": true,
	"neither": true,
	"nor":     true,
}

// intensifiers scale the weight of the sentiment word immediately after them.
var intensifiers = map[string]float64{
	"very":       1.5,
	"really":     1.4,
	"extremely":  2.0,
	"incredibly": 2.0,
	"absolutely": 1.8,
	"totally":    1.6,
	"quite":      1.2,
	"so":         1.3,
	"too":        1.2,
	"slightly":   0.7,
	"somewhat":   0.8,
	"barely":     0.5,
	"hardly":     0.5,
}
