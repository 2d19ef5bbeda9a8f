package graphics

import (
	"strings"
	"time"

	g "maragu.dev/gomponents"
)

// EaseInOut is the cubic-bezier used by every spline-timed loop
const EaseInOut = "0.42 0 0.58 1"

// Animation describes one declarative attribute loop. It renders to an
// SVG <animate> element, or <animateTransform> when Transform is set.
type Animation struct {
	Attribute string
	Transform string // rotate, translate, skewX; empty for plain attributes
	Values    []string
	From, To  string
	Dur       time.Duration
	Begin     time.Duration
	Forever   bool
	Timing    *Spline
}

// Spline holds keyTimes/keySplines for calcMode="spline"
type Spline struct {
	KeyTimes   []float64
	KeySplines []string
}

// Loop returns a keyframe animation that repeats indefinitely
func Loop(attr string, dur time.Duration, values ...string) Animation {
	return Animation{Attribute: attr, Values: values, Dur: dur, Forever: true}
}

// Spin returns an indefinite from/to transform animation
func Spin(transform, from, to string, dur time.Duration) Animation {
	return Animation{
		Attribute: "transform",
		Transform: transform,
		From:      from,
		To:        to,
		Dur:       dur,
		Forever:   true,
	}
}

// Sway returns an indefinite keyframe transform animation
func Sway(transform string, dur time.Duration, values ...string) Animation {
	a := Loop("transform", dur, values...)
	a.Transform = transform
	return a
}

// At offsets the animation start; negative values start mid-cycle
func (a Animation) At(begin time.Duration) Animation {
	a.Begin = begin
	return a
}

// Eased switches the animation to spline timing with ease-in-out segments
func (a Animation) Eased(keyTimes ...float64) Animation {
	splines := make([]string, 0, len(keyTimes))
	for i := 1; i < len(keyTimes); i++ {
		splines = append(splines, EaseInOut)
	}
	a.Timing = &Spline{KeyTimes: keyTimes, KeySplines: splines}
	return a
}

// Node renders the animation element
func (a Animation) Node() g.Node {
	name := "animate"
	nodes := []g.Node{g.Attr("attributeName", a.Attribute)}
	if a.Transform != "" {
		name = "animateTransform"
		nodes = append(nodes, g.Attr("type", a.Transform))
	}
	if len(a.Values) > 0 {
		nodes = append(nodes, g.Attr("values", strings.Join(a.Values, ";")))
	} else {
		nodes = append(nodes, g.Attr("from", a.From), g.Attr("to", a.To))
	}
	nodes = append(nodes, g.Attr("dur", seconds(a.Dur)))
	if a.Begin != 0 {
		nodes = append(nodes, g.Attr("begin", seconds(a.Begin)))
	}
	if a.Forever {
		nodes = append(nodes, g.Attr("repeatCount", "indefinite"))
	}
	if a.Timing != nil {
		times := make([]string, len(a.Timing.KeyTimes))
		for i, t := range a.Timing.KeyTimes {
			times[i] = num(t)
		}
		nodes = append(nodes,
			g.Attr("calcMode", "spline"),
			g.Attr("keyTimes", strings.Join(times, ";")),
			g.Attr("keySplines", strings.Join(a.Timing.KeySplines, ";")),
		)
	}
	return g.El(name, nodes...)
}

// seconds formats a duration the way SMIL clock values expect, e.g. "5.2s"
func seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}

// ms is shorthand for literal durations in scene definitions
func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
