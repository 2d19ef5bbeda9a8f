// Package mount places the rendered app inside the host shell document.
// The shell must contain the designated container element; without it
// nothing is rendered.
package mount

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	g "maragu.dev/gomponents"
)

// ErrContainerNotFound means the shell has no element with the mount id
var ErrContainerNotFound = errors.New("mount container not found")

// Root mounts apps into one container of a shell
type Root struct {
	shell  *Shell
	id     string
	logger *slog.Logger
}

// New checks that the shell contains the container and returns a Root.
// A missing container is logged and reported as ErrContainerNotFound.
func New(shell *Shell, id string, logger *slog.Logger) (*Root, error) {
	doc, err := html.Parse(bytes.NewReader(shell.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("failed to parse shell: %w", err)
	}
	if findByID(doc, id) == nil {
		logger.Error("mount container not found", "id", id, "shell", shell.Path())
		return nil, fmt.Errorf("%w: #%s", ErrContainerNotFound, id)
	}
	return &Root{shell: shell, id: id, logger: logger}, nil
}

// Render writes the shell with title set and app appended to the container.
// Nothing is written to w unless the whole document renders.
func (r *Root) Render(w io.Writer, title string, app g.Node) error {
	doc, err := html.Parse(bytes.NewReader(r.shell.Bytes()))
	if err != nil {
		return fmt.Errorf("failed to parse shell: %w", err)
	}

	container := findByID(doc, r.id)
	if container == nil {
		r.logger.Error("mount container not found", "id", r.id, "shell", r.shell.Path())
		return fmt.Errorf("%w: #%s", ErrContainerNotFound, r.id)
	}

	var rendered bytes.Buffer
	if err := app.Render(&rendered); err != nil {
		return fmt.Errorf("failed to render app: %w", err)
	}
	nodes, err := html.ParseFragment(&rendered, container)
	if err != nil {
		return fmt.Errorf("failed to parse rendered app: %w", err)
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	setTitle(doc, title)

	var out bytes.Buffer
	if err := html.Render(&out, doc); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}
	_, err = out.WriteTo(w)
	return err
}

// findByID returns the first element whose id attribute equals id
func findByID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// setTitle replaces the document title, adding a <title> to <head> if needed
func setTitle(doc *html.Node, title string) {
	el := findElement(doc, atom.Title)
	if el == nil {
		head := findElement(doc, atom.Head)
		if head == nil {
			return
		}
		el = &html.Node{Type: html.ElementNode, Data: "title", DataAtom: atom.Title}
		head.AppendChild(el)
	}
	for el.FirstChild != nil {
		el.RemoveChild(el.FirstChild)
	}
	el.AppendChild(&html.Node{Type: html.TextNode, Data: title})
}
