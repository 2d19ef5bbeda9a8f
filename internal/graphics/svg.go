package graphics

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Props sizes a scene graphic. Empty Width and Height default to 100%.
type Props struct {
	Width  string
	Height string
	Class  string
}

// Component renders a self-contained animated scene
type Component func(Props) g.Node

func (p Props) withDefaults() Props {
	if p.Width == "" {
		p.Width = "100%"
	}
	if p.Height == "" {
		p.Height = "100%"
	}
	return p
}

// scene wraps children in the shared 300x200 card viewport
func scene(p Props, children ...g.Node) g.Node {
	p = p.withDefaults()
	return el("svg",
		attr("viewBox", "0 0 300 200"),
		attr("width", p.Width),
		attr("height", p.Height),
		g.If(p.Class != "", h.Class(p.Class)),
		attr("preserveAspectRatio", "xMidYMid slice"),
		attr("aria-hidden", "true"),
		attr("style", "display: block"),
		g.Group(children),
	)
}

func el(name string, children ...g.Node) g.Node {
	return g.El(name, children...)
}

func attr(name, value string) g.Node {
	return g.Attr(name, value)
}

// animated appends animation elements to a shape's attribute list
func animated(anims ...Animation) g.Node {
	nodes := make(g.Group, len(anims))
	for i, a := range anims {
		nodes[i] = a.Node()
	}
	return nodes
}

func stop(offset, style string) g.Node {
	return el("stop", attr("offset", offset), attr("style", style))
}

func blur(id, deviation string) g.Node {
	return el("filter", attr("id", id),
		el("feGaussianBlur", attr("stdDeviation", deviation)),
	)
}
