package work

import (
	"encoding/json"
	"reflect"
	"sort"

	"github.com/arthur-debert/dictator/pkg/jsonpath"
)

// IsSubset reports whether want is contained in have. Objects match when
// every key of want matches in have; arrays match when every element of
// want matches some element of have; anything else must be equal.
func IsSubset(want, have interface{}) bool {
	switch w := want.(type) {
	case map[string]interface{}:
		h, ok := have.(map[string]interface{})
		if !ok {
			return false
		}
		for key, wv := range w {
			hv, exists := h[key]
			if !exists || !IsSubset(wv, hv) {
				return false
			}
		}
		return true
	case []interface{}:
		h, ok := have.([]interface{})
		if !ok {
			return false
		}
		for _, wv := range w {
			if !containsMatch(h, wv) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(want, have)
	}
}

func containsMatch(have []interface{}, want interface{}) bool {
	for _, hv := range have {
		if IsSubset(want, hv) {
			return true
		}
	}
	return false
}

// mergeObject writes every part of want missing from have into doc,
// addressing members under base. It edits doc in place with sjson so the
// existing key order of the target survives.
func mergeObject(doc []byte, base jsonpath.Path, want, have map[string]interface{}) ([]byte, error) {
	keys := make([]string, 0, len(want))
	for key := range want {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var err error
	for _, key := range keys {
		wv := want[key]
		hv, exists := have[key]
		path := base.Key(key)

		switch {
		case exists && IsSubset(wv, hv):
			continue
		case exists && isObject(wv) && isObject(hv):
			doc, err = mergeObject(doc, path, wv.(map[string]interface{}), hv.(map[string]interface{}))
		case exists && isArray(wv) && isArray(hv):
			doc, err = mergeArray(doc, path, wv.([]interface{}), hv.([]interface{}))
		default:
			doc, err = path.Set(doc, wv)
		}
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// mergeArray appends the elements of want that match nothing in have
func mergeArray(doc []byte, path jsonpath.Path, want, have []interface{}) ([]byte, error) {
	var err error
	for _, wv := range want {
		if containsMatch(have, wv) {
			continue
		}
		if doc, err = path.Append(doc, wv); err != nil {
			return nil, err
		}
		have = append(have, wv)
	}
	return doc, nil
}

// mergeValue merges want into have on decoded values. Unlike mergeObject
// it does not keep the target's key order.
func mergeValue(want, have interface{}) interface{} {
	if wm, ok := want.(map[string]interface{}); ok {
		hm, ok := have.(map[string]interface{})
		if !ok {
			return want
		}
		out := make(map[string]interface{}, len(hm)+len(wm))
		for k, v := range hm {
			out[k] = v
		}
		for k, wv := range wm {
			hv, exists := hm[k]
			switch {
			case exists && IsSubset(wv, hv):
			case exists:
				out[k] = mergeValue(wv, hv)
			default:
				out[k] = wv
			}
		}
		return out
	}

	w, wok := want.([]interface{})
	h, hok := have.([]interface{})
	if wok && hok {
		out := append([]interface{}{}, h...)
		for _, wv := range w {
			if !containsMatch(out, wv) {
				out = append(out, wv)
			}
		}
		return out
	}
	return want
}

// MergeJSON merges the want document into the have document and returns
// the indented result. A blank have is treated as {}.
func MergeJSON(wantDoc, haveDoc []byte) ([]byte, error) {
	if jsonpath.IsBlank(haveDoc) {
		haveDoc = []byte("{}")
	}

	var want, have interface{}
	if err := json.Unmarshal(wantDoc, &want); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(haveDoc, &have); err != nil {
		return nil, err
	}

	wm, wok := want.(map[string]interface{})
	hm, hok := have.(map[string]interface{})
	// sjson cannot address "" members, those documents are rebuilt instead
	if wok && hok && !hasEmptyKey(wm) {
		out, err := mergeObject(haveDoc, jsonpath.Root(), wm, hm)
		if err != nil {
			return nil, err
		}
		return jsonpath.Pretty(out), nil
	}

	out, err := json.MarshalIndent(mergeValue(want, have), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

func hasEmptyKey(v interface{}) bool {
	switch t := v.(type) {
	case map[string]interface{}:
		for k, child := range t {
			if k == "" || hasEmptyKey(child) {
				return true
			}
		}
	case []interface{}:
		for _, child := range t {
			if hasEmptyKey(child) {
				return true
			}
		}
	}
	return false
}

func isObject(v interface{}) bool {
	_, ok := v.(map[string]interface{})
	return ok
}

func isArray(v interface{}) bool {
	_, ok := v.([]interface{})
	return ok
}
