// Package parser reads chart series out of xlsx workbooks and series files.
package parser

import (
	"archive/zip"
	"encoding/xml"
	"io"
	"strconv"
	"strings"
)

// emuPerPixel is 914400 EMU per inch over 96 pixels per inch.
const emuPerPixel = 9525

// emuToPixels converts a drawing extent to whole pixels, rounding to nearest.
func emuToPixels(emu int64) int {
	if emu <= 0 {
		return 0
	}
	return int((emu + emuPerPixel/2) / emuPerPixel)
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, nil
}

func readElementText(decoder *xml.Decoder) (string, error) {
	var text strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return text.String(), err
		}
		switch t := token.(type) {
		case xml.CharData:
			text.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return text.String(), nil
}

// attr returns the value of the attribute with the given local name.
func attr(se xml.StartElement, local string) string {
	for _, a := range se.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// skipElement consumes tokens up to the end of the current element.
func skipElement(decoder *xml.Decoder) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		switch token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

// relsPathFor returns the relationships part of an OOXML part,
// e.g. xl/drawings/drawing1.xml -> xl/drawings/_rels/drawing1.xml.rels.
func relsPathFor(part string) string {
	idx := strings.LastIndex(part, "/")
	return part[:idx+1] + "_rels/" + part[idx+1:] + ".rels"
}

// forEachRelationship calls fn with the Id, Type and Target of every
// Relationship element in a .rels part.
func forEachRelationship(data []byte, fn func(id, relType, target string)) {
	decoder := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		token, err := decoder.Token()
		if err != nil {
			return
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			fn(attr(se, "Id"), attr(se, "Type"), attr(se, "Target"))
		}
	}
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(strings.NewReader(string(data)))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			name, rID := attr(se, "name"), attr(se, "id")
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> file path
	forEachRelationship(data, func(id, _, target string) {
		if sheetName, ok := sheetsInfo[id]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
			result[sheetName] = resolveRelativePath(target, "xl")
		}
	})
	return result
}

func findDrawingRelationship(data []byte) string {
	var drawing string
	forEachRelationship(data, func(_, relType, target string) {
		if drawing == "" && strings.HasSuffix(strings.ToLower(relType), "/drawing") {
			drawing = target
		}
	})
	return drawing
}

// parseXfrm parses an xfrm element for frame size in pixels.
func parseXfrm(decoder *xml.Decoder) (width, height int) {
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Local == "ext" {
				if cx, err := strconv.ParseInt(attr(t, "cx"), 10, 64); err == nil {
					width = emuToPixels(cx)
				}
				if cy, err := strconv.ParseInt(attr(t, "cy"), 10, 64); err == nil {
					height = emuToPixels(cy)
				}
			}
		case xml.EndElement:
			depth--
		}
	}
	return
}
