package attr

import (
	"fmt"

	"github.com/PelicanPlatform/classad/classad"
)

// Codec builds and consumes the ClassAd representation of attribute lists
// carried over the administrative protocol's wire messages. Every attribute
// name with a
// non-empty resource sub-name is flattened to "Name.Resource" on the ad,
// since ClassAd has no native nested-attribute notion.
type Codec struct {
	Catalog *Catalog
}

// DefaultCodec uses the process-wide Default catalog.
var DefaultCodec = &Codec{Catalog: Default}

func wireKey(name, resource string) string {
	if resource == "" {
		return name
	}
	return name + "." + resource
}

// EncodeAttrOpList renders an ordered attribute-operation list as a
// ClassAd, suitable for handing to message.PutClassAd. Unset operations are
// encoded as the ClassAd undefined value so the remote side can distinguish
// "delete this attribute" from "never mentioned."
func (c *Codec) EncodeAttrOpList(ops AttrOplList) (*classad.ClassAd, error) {
	ad := classad.New()
	for _, op := range ops {
		key := wireKey(op.Name, op.Resource)
		if op.Op == OpUnset {
			expr, err := classad.ParseExpr("undefined")
			if err != nil {
				return nil, fmt.Errorf("encode attropl %s: %w", key, err)
			}
			ad.InsertExpr(key, expr)
			continue
		}
		if err := ad.Set(key, op.Value); err != nil {
			return nil, fmt.Errorf("encode attropl %s: %w", key, err)
		}
	}
	return ad, nil
}

// DecodeAttrList reads every attribute set on ad back into an ordered
// reading list. names restricts which keys to pull and must be non-nil (a
// nil names is an error); readings are emitted in the order names lists
// them so a caller's requested projection order survives the round trip.
func (c *Codec) DecodeAttrList(ad *classad.ClassAd, names []string) (AttrLList, error) {
	if names == nil {
		return nil, fmt.Errorf("DecodeAttrList requires an explicit projection; use ad.Lookup directly for full dumps")
	}
	out := make(AttrLList, 0, len(names))
	for _, key := range names {
		val := ad.EvaluateAttr(key)
		if val.IsError() {
			continue
		}
		s, ok := attrValueToString(val)
		if !ok {
			continue
		}
		name, resource := splitWireKey(key)
		out = append(out, AttrL{Name: name, Resource: resource, Value: s})
	}
	return out, nil
}

// attrValueToString renders a classad.Value as the canonical string form
// the rest of this package's formatters expect to parse.
func attrValueToString(val classad.Value) (string, bool) {
	switch {
	case val.IsString():
		s, err := val.StringValue()
		return s, err == nil
	case val.IsInteger():
		n, err := val.IntValue()
		if err != nil {
			return "", false
		}
		return fmt.Sprintf("%d", n), true
	case val.IsReal():
		f, err := val.RealValue()
		if err != nil {
			return "", false
		}
		return fmt.Sprintf("%g", f), true
	case val.IsBool():
		b, err := val.BoolValue()
		if err != nil {
			return "", false
		}
		return FormatBool(b), true
	default:
		return "", false
	}
}

// splitWireKey reverses wireKey's "Name.Resource" flattening.
func splitWireKey(key string) (name, resource string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}

// DecodeBatchStatusList decodes a sequence of reply ads into a
// BatchStatusList, pulling the object's name from nameAttr (e.g. "Name" for
// queue/node/hook stat replies, "ClusterId" fused with "ProcId" for job
// stat replies is the caller's responsibility to pre-format).
func (c *Codec) DecodeBatchStatusList(ads []*classad.ClassAd, nameAttr string, names []string) (BatchStatusList, error) {
	out := make(BatchStatusList, 0, len(ads))
	for _, ad := range ads {
		objName, ok := ad.EvaluateAttrString(nameAttr)
		if !ok {
			return nil, fmt.Errorf("decode batch status: reply ad missing %q", nameAttr)
		}
		attrs, err := c.DecodeAttrList(ad, names)
		if err != nil {
			return nil, err
		}
		out = append(out, &BatchStatus{Name: objName, Attribs: attrs})
	}
	return out, nil
}
