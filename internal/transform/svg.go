package transform

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

type SVGFunc string

const (
	SVGMatrix      SVGFunc = "matrix"
	SVGMatrix3d    SVGFunc = "matrix3d"
	SVGPerspective SVGFunc = "perspective"
	SVGTranslate   SVGFunc = "translate"
	SVGScale       SVGFunc = "scale"
	SVGRotate      SVGFunc = "rotate"
	SVGSkewX       SVGFunc = "skewX"
	SVGSkewY       SVGFunc = "skewY"
)

var svgFuncs = map[SVGFunc]struct{}{
	SVGMatrix: {}, SVGMatrix3d: {}, SVGPerspective: {}, SVGTranslate: {},
	SVGScale: {}, SVGRotate: {}, SVGSkewX: {}, SVGSkewY: {},
}

var svgArgSeparator = regexp.MustCompile(`[\s,]+`)

// SVGTransform is a parsed SVG transform attribute with numeric arguments.
type SVGTransform struct {
	funcs ordered[SVGFunc, float64]
}

// ParseSVG reads an attribute such as "translate(10 20) rotate(45, 5, 5)".
func ParseSVG(text string) (SVGTransform, error) {
	var t SVGTransform
	for _, c := range tokenize(text) {
		name := SVGFunc(c.name)
		if _, ok := svgFuncs[name]; !ok {
			return SVGTransform{}, fmt.Errorf("%w: %s", ErrUnknownFunction, c.name)
		}
		var args []float64
		for _, a := range svgArgSeparator.Split(c.args, -1) {
			if a == "" {
				continue
			}
			f, err := parseSVGNumber(a)
			if err != nil {
				return SVGTransform{}, fmt.Errorf("%w: %s(%s)", ErrInvalidArgument, c.name, a)
			}
			args = append(args, f)
		}
		t.funcs.set(name, args)
	}
	return t, nil
}

// parseSVGNumber accepts finite decimal numbers; strconv alone would also
// take "NaN", "Inf" and hex floats.
func parseSVGNumber(s string) (float64, error) {
	lower := strings.ToLower(s)
	if strings.ContainsAny(lower, "x_") || strings.Contains(lower, "inf") || strings.Contains(lower, "nan") {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}

func (t SVGTransform) Get(name SVGFunc) ([]float64, bool) { return t.funcs.get(name) }

func (t *SVGTransform) Set(name SVGFunc, args ...float64) error {
	if _, ok := svgFuncs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	t.funcs.set(name, append([]float64(nil), args...))
	return nil
}

func (t SVGTransform) Functions() []SVGFunc { return t.funcs.names() }

func (t SVGTransform) Map() map[SVGFunc][]float64 {
	out := make(map[SVGFunc][]float64, len(t.funcs.order))
	for _, name := range t.funcs.order {
		out[name], _ = t.funcs.get(name)
	}
	return out
}

func (t SVGTransform) String() string {
	return t.funcs.render(" ", func(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) })
}
