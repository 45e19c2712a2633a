package output

import (
	"io"
	"strconv"

	"github.com/beevik/etree"
)

type xmlEncoder struct {
	w io.Writer
}

func newXMLEncoder(w io.Writer, _ Options) (Encoder, error) {
	return &xmlEncoder{w: w}, nil
}

func (e *xmlEncoder) Encode(v any) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	switch v := v.(type) {
	case Number:
		numberElement(&doc.Element, v)
	case Value:
		el := doc.CreateElement("value")
		el.CreateAttr("input", v.Input)
		el.CreateAttr("kind", v.Kind)
		el.SetText(v.Value)
	case Failure:
		failureElement(&doc.Element, v)
	case Batch:
		root := doc.CreateElement("batch")
		for _, item := range v.Items {
			if item.Failure != nil {
				failureElement(root, *item.Failure)
				continue
			}
			numberElement(root, *item.Number)
		}
		if len(v.Stats) > 0 {
			statsElement(root, Stats{Samples: v.Stats})
		}
	case Countries:
		root := doc.CreateElement("countries")
		for _, c := range v.Countries {
			el := root.CreateElement("country")
			el.CreateAttr("code", c.Code)
			if c.Reserved {
				el.CreateAttr("reserved", "true")
				continue
			}
			el.CreateAttr("iso", c.ISO)
			el.CreateAttr("rules", strconv.Itoa(c.Rules))
			if c.Trunk != "" {
				el.CreateAttr("trunk", c.Trunk)
			}
			el.SetText(c.Name)
		}
	case Check:
		el := doc.CreateElement("check")
		el.CreateAttr("e164", v.E164)
		el.CreateAttr("valid", strconv.FormatBool(v.Valid))
		el.CreateAttr("ndc-agrees", strconv.FormatBool(v.NDCAgrees))
		el.CreateElement("region").SetText(v.Region)
		el.CreateElement("ndc").SetText(v.NDC)
		el.CreateElement("international").SetText(v.International)
	case Stats:
		statsElement(&doc.Element, v)
	default:
		return unsupported(v)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(e.w)
	return err
}

func numberElement(parent *etree.Element, n Number) {
	el := parent.CreateElement("number")
	el.CreateAttr("input", n.Input)
	el.CreateAttr("country-code", n.CountryCode)
	if n.ISO != "" {
		el.CreateAttr("iso", n.ISO)
	}
	if n.Trunk != "" {
		el.CreateElement("trunk").SetText(n.Trunk)
	}
	el.CreateElement("ndc").SetText(n.NDC)
	groups := el.CreateElement("groups")
	for _, g := range n.Groups {
		groups.CreateElement("group").SetText(g)
	}
	if n.Formatted != "" {
		el.CreateElement("formatted").SetText(n.Formatted)
	}
}

func failureElement(parent *etree.Element, f Failure) {
	el := parent.CreateElement("failure")
	el.CreateAttr("input", f.Input)
	el.CreateAttr("code", f.Code)
	el.SetText(f.Message)
}

func statsElement(parent *etree.Element, s Stats) {
	el := parent.CreateElement("stats")
	for _, sample := range s.Samples {
		c := el.CreateElement("count")
		c.CreateAttr("country", sample.Country)
		c.CreateAttr("outcome", sample.Outcome)
		c.SetText(strconv.FormatUint(sample.Count, 10))
	}
}
