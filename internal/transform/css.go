package transform

import (
	"fmt"
	"strings"
)

type CSSFunc string

const (
	CSSMatrix      CSSFunc = "matrix"
	CSSMatrix3d    CSSFunc = "matrix3d"
	CSSTranslate   CSSFunc = "translate"
	CSSTranslate3d CSSFunc = "translate3d"
	CSSTranslateX  CSSFunc = "translateX"
	CSSTranslateY  CSSFunc = "translateY"
	CSSTranslateZ  CSSFunc = "translateZ"
	CSSScale       CSSFunc = "scale"
	CSSScale3d     CSSFunc = "scale3d"
	CSSScaleX      CSSFunc = "scaleX"
	CSSScaleY      CSSFunc = "scaleY"
	CSSScaleZ      CSSFunc = "scaleZ"
	CSSRotate      CSSFunc = "rotate"
	CSSRotate3d    CSSFunc = "rotate3d"
	CSSRotateX     CSSFunc = "rotateX"
	CSSRotateY     CSSFunc = "rotateY"
	CSSRotateZ     CSSFunc = "rotateZ"
	CSSSkew        CSSFunc = "skew"
	CSSSkewX       CSSFunc = "skewX"
	CSSSkewY       CSSFunc = "skewY"
	CSSPerspective CSSFunc = "perspective"
)

var cssFuncs = map[CSSFunc]struct{}{
	CSSMatrix: {}, CSSMatrix3d: {},
	CSSTranslate: {}, CSSTranslate3d: {}, CSSTranslateX: {}, CSSTranslateY: {}, CSSTranslateZ: {},
	CSSScale: {}, CSSScale3d: {}, CSSScaleX: {}, CSSScaleY: {}, CSSScaleZ: {},
	CSSRotate: {}, CSSRotate3d: {}, CSSRotateX: {}, CSSRotateY: {}, CSSRotateZ: {},
	CSSSkew: {}, CSSSkewX: {}, CSSSkewY: {},
	CSSPerspective: {},
}

// CSSTransform is a parsed CSS transform property. Arguments keep their units.
type CSSTransform struct {
	funcs ordered[CSSFunc, string]
}

// ParseCSS reads a value such as "translate(10px, 20px) rotate(45deg)".
func ParseCSS(text string) (CSSTransform, error) {
	var t CSSTransform
	for _, c := range tokenize(text) {
		name := CSSFunc(c.name)
		if _, ok := cssFuncs[name]; !ok {
			return CSSTransform{}, fmt.Errorf("%w: %s", ErrUnknownFunction, c.name)
		}
		var args []string
		for _, a := range strings.Split(c.args, ",") {
			a = strings.TrimSpace(a)
			if a == "" {
				continue
			}
			args = append(args, a)
		}
		t.funcs.set(name, args)
	}
	return t, nil
}

func (t CSSTransform) Get(name CSSFunc) ([]string, bool) { return t.funcs.get(name) }

// Set replaces the arguments of name, appending it when absent.
func (t *CSSTransform) Set(name CSSFunc, args ...string) error {
	if _, ok := cssFuncs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFunction, name)
	}
	t.funcs.set(name, append([]string(nil), args...))
	return nil
}

func (t CSSTransform) Functions() []CSSFunc { return t.funcs.names() }

// Map returns the arguments keyed by function name.
func (t CSSTransform) Map() map[CSSFunc][]string {
	out := make(map[CSSFunc][]string, len(t.funcs.order))
	for _, name := range t.funcs.order {
		out[name], _ = t.funcs.get(name)
	}
	return out
}

func (t CSSTransform) String() string {
	return t.funcs.render(", ", func(s string) string { return s })
}
