package planet

import "sort"

var sampleText = map[string]string{
	"planet_1": `..X..
.~~..
..H.X
X....
..^^.
`,
	"planet_2": `~~~~X....
~..XX.^^.
~.H.....X
XX.X.~...
.....~~X.
`,
	"planet_3": `XXXXXXXXX
X...X...X
X.X.X.X.X
X.XH..X.X
X.XXXXX.X
X.......X
XXXXXXXXX
`,
}

// Samples returns fresh copies of the built-in surfaces keyed by name.
func Samples() map[string]*Surface {
	out := make(map[string]*Surface, len(sampleText))
	for name, text := range sampleText {
		out[name] = MustParse(text)
	}
	return out
}

// SampleNames lists the built-in surfaces in name order.
func SampleNames() []string {
	names := make([]string, 0, len(sampleText))
	for name := range sampleText {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
