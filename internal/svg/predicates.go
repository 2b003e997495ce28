package svg

// basicShapes are the SVG basic shape element names that the editor's
// path operations accept directly.
var basicShapes = []string{"rect", "circle", "ellipse", "line", "polyline", "polygon"}

// IsGroup reports whether the element is a group container.
func (e *Element) IsGroup() bool {
	return isSVGName(e.Name, "g")
}

// IsPath reports whether the element is a path.
func (e *Element) IsPath() bool {
	return isSVGName(e.Name, "path")
}

// IsBasicShape reports whether the element is one of the SVG basic
// shapes (rect, circle, ellipse, line, polyline, polygon).
func (e *Element) IsBasicShape() bool {
	for _, tag := range basicShapes {
		if isSVGName(e.Name, tag) {
			return true
		}
	}
	return false
}

// IsCustomShape reports whether the element carries an editor-specific
// shape type (sodipodi:type), e.g. stars and spirals.
func (e *Element) IsCustomShape() bool {
	_, ok := e.AttrValue(NamespaceSodipodi, "type")
	return ok
}

// IsShape reports whether the element is a basic or custom shape.
func (e *Element) IsShape() bool {
	return e.IsBasicShape() || e.IsCustomShape()
}

// HasPathEffect reports whether the element carries a live path effect
// (inkscape:path-effect).
func (e *Element) HasPathEffect() bool {
	_, ok := e.AttrValue(NamespaceInkscape, "path-effect")
	return ok
}

// IsModifiablePath reports whether the element is a plain editable
// path: a path with neither a live effect nor a custom shape type.
func (e *Element) IsModifiablePath() bool {
	return e.IsPath() && !e.HasPathEffect() && !e.IsCustomShape()
}

// IsImage reports whether the element is an image.
func (e *Element) IsImage() bool {
	return isSVGName(e.Name, "image")
}

// IsText reports whether the element is a text element.
func (e *Element) IsText() bool {
	return isSVGName(e.Name, "text")
}

// IsOperable reports whether the editor's path operations can consume
// this element: a path, a recognized shape, or text. Groups and images
// are not operable themselves.
func (e *Element) IsOperable() bool {
	return e.IsPath() || e.IsShape() || e.IsText()
}
