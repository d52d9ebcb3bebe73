// Package htmlattr knows which prop names are legitimate markup attributes.
//
// Names use the camelCase spelling of component props (className, tabIndex,
// strokeWidth). data-*, aria-* and on[A-Z]* event handlers are always valid.
package htmlattr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsValid reports whether name is a known HTML or SVG attribute.
func IsValid(name string) bool {
	if _, ok := attributes[name]; ok {
		return true
	}
	if strings.HasPrefix(name, "data-") || strings.HasPrefix(name, "aria-") {
		return true
	}
	if rest, ok := strings.CutPrefix(name, "on"); ok {
		r, _ := utf8.DecodeRuneInString(rest)
		return unicode.IsUpper(r)
	}
	return false
}

// Count returns the size of the whitelist (prefix rules excluded).
func Count() int {
	return len(attributes)
}

var attributes = set(
	// component bookkeeping props that reach elements
	"children", "dangerouslySetInnerHTML", "key", "ref",
	"autoFocus", "defaultValue", "defaultChecked", "innerHTML",
	"suppressContentEditableWarning", "suppressHydrationWarning", "value",

	// HTML
	"abbr", "accept", "acceptCharset", "accessKey", "action", "allow",
	"allowFullScreen", "allowPaymentRequest", "allowTransparency", "alt", "async",
	"autoComplete", "autoPlay", "capture", "cellPadding", "cellSpacing",
	"challenge", "charSet", "checked", "cite", "classID", "className", "cols",
	"colSpan", "content", "contentEditable", "contextMenu", "controls",
	"controlsList", "coords", "crossOrigin", "data", "dateTime", "decoding",
	"default", "defer", "dir", "disabled", "disablePictureInPicture", "download",
	"draggable", "encType", "enterKeyHint", "form", "formAction", "formEncType",
	"formMethod", "formNoValidate", "formTarget", "frameBorder", "headers",
	"height", "hidden", "high", "href", "hrefLang", "htmlFor", "httpEquiv", "id",
	"inert", "inputMode", "integrity", "is", "keyParams", "keyType", "kind",
	"label", "lang", "list", "loading", "loop", "low", "marginHeight",
	"marginWidth", "max", "maxLength", "media", "mediaGroup", "method", "min",
	"minLength", "multiple", "muted", "name", "nonce", "noValidate", "open",
	"optimum", "pattern", "placeholder", "playsInline", "poster", "preload",
	"profile", "radioGroup", "readOnly", "referrerPolicy", "rel", "required",
	"reversed", "role", "rows", "rowSpan", "sandbox", "scope", "scoped",
	"scrolling", "seamless", "selected", "shape", "size", "sizes", "slot",
	"span", "spellCheck", "src", "srcDoc", "srcLang", "srcSet", "start", "step",
	"style", "summary", "tabIndex", "target", "title", "translate", "type",
	"useMap", "width", "wmode", "wrap",

	// microdata / RDFa
	"about", "datatype", "inlist", "itemID", "itemProp", "itemRef", "itemScope",
	"itemType", "prefix", "property", "resource", "typeof", "vocab",

	// non-standard
	"autoCapitalize", "autoCorrect", "autoSave", "color", "incremental",
	"results", "security", "unselectable",

	// SVG
	"accentHeight", "accumulate", "additive", "alignmentBaseline",
	"allowReorder", "alphabetic", "amplitude", "arabicForm", "ascent",
	"attributeName", "attributeType", "autoReverse", "azimuth", "baseFrequency",
	"baselineShift", "baseProfile", "bbox", "begin", "bias", "by", "calcMode",
	"capHeight", "clip", "clipPath", "clipPathUnits", "clipRule",
	"colorInterpolation", "colorInterpolationFilters", "colorProfile",
	"colorRendering", "contentScriptType", "contentStyleType", "cursor", "cx",
	"cy", "d", "decelerate", "descent", "diffuseConstant", "direction",
	"display", "divisor", "dominantBaseline", "dur", "dx", "dy", "edgeMode",
	"elevation", "enableBackground", "end", "exponent", "externalResourcesRequired",
	"fill", "fillOpacity", "fillRule", "filter", "filterRes", "filterUnits",
	"floodColor", "floodOpacity", "focusable", "fontFamily", "fontSize",
	"fontSizeAdjust", "fontStretch", "fontStyle", "fontVariant", "fontWeight",
	"format", "from", "fr", "fx", "fy", "g1", "g2", "glyphName",
	"glyphOrientationHorizontal", "glyphOrientationVertical", "glyphRef",
	"gradientTransform", "gradientUnits", "hanging", "horizAdvX", "horizOriginX",
	"ideographic", "imageRendering", "in", "in2", "intercept", "k", "k1", "k2",
	"k3", "k4", "kernelMatrix", "kernelUnitLength", "kerning", "keyPoints",
	"keySplines", "keyTimes", "lengthAdjust", "letterSpacing", "lightingColor",
	"limitingConeAngle", "local", "markerEnd", "markerHeight", "markerMid",
	"markerStart", "markerUnits", "markerWidth", "mask", "maskContentUnits",
	"maskUnits", "mathematical", "mode", "numOctaves", "offset", "opacity",
	"operator", "order", "orient", "orientation", "origin", "overflow",
	"overlinePosition", "overlineThickness", "panose1", "paintOrder",
	"pathLength", "patternContentUnits", "patternTransform", "patternUnits",
	"pointerEvents", "points", "pointsAtX", "pointsAtY", "pointsAtZ",
	"preserveAlpha", "preserveAspectRatio", "primitiveUnits", "r", "radius",
	"refX", "refY", "renderingIntent", "repeatCount", "repeatDur",
	"requiredExtensions", "requiredFeatures", "restart", "result", "rotate",
	"rx", "ry", "scale", "seed", "shapeRendering", "slope", "spacing",
	"specularConstant", "specularExponent", "speed", "spreadMethod",
	"startOffset", "stdDeviation", "stemh", "stemv", "stitchTiles", "stopColor",
	"stopOpacity", "strikethroughPosition", "strikethroughThickness", "string",
	"stroke", "strokeDasharray", "strokeDashoffset", "strokeLinecap",
	"strokeLinejoin", "strokeMiterlimit", "strokeOpacity", "strokeWidth",
	"surfaceScale", "systemLanguage", "tableValues", "targetX", "targetY",
	"textAnchor", "textDecoration", "textLength", "textRendering", "to",
	"transform", "u1", "u2", "underlinePosition", "underlineThickness",
	"unicode", "unicodeBidi", "unicodeRange", "unitsPerEm", "vAlphabetic",
	"values", "vectorEffect", "version", "vertAdvY", "vertOriginX",
	"vertOriginY", "vHanging", "vIdeographic", "viewBox", "viewTarget",
	"visibility", "vMathematical", "widths", "wordSpacing", "writingMode", "x",
	"x1", "x2", "xChannelSelector", "xHeight", "xlinkActuate", "xlinkArcrole",
	"xlinkHref", "xlinkRole", "xlinkShow", "xlinkTitle", "xlinkType", "xmlBase",
	"xmlLang", "xmlns", "xmlnsXlink", "xmlSpace", "y", "y1", "y2",
	"yChannelSelector", "z", "zoomAndPan",
)

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}
