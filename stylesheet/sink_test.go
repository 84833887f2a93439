package stylesheet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRules struct {
	inserted []string
	reject   bool
}

func (r *fakeRules) InsertRule(rule string) error {
	if r.reject {
		return ErrRuleRejected
	}
	r.inserted = append(r.inserted, rule)
	return nil
}

func (r *fakeRules) Rules() []Rule { return nil }

type fakeElement struct{ rules *fakeRules }

func (e fakeElement) Sheet() RuleList { return e.rules }

type fakeDocument struct {
	elements  map[string]fakeElement
	created   []string
	createErr error
}

func (d *fakeDocument) StyleElement(id string) (Element, bool) {
	el, ok := d.elements[id]
	return el, ok
}

func (d *fakeDocument) CreateStyleElement(id string) (Element, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	el := fakeElement{rules: &fakeRules{}}
	d.elements[id] = el
	d.created = append(d.created, id)
	return el, nil
}

func TestEnsure(t *testing.T) {
	existing := &fakeRules{}
	doc := &fakeDocument{elements: map[string]fakeElement{
		DefaultElementID: {rules: existing},
	}}

	rules, err := Ensure(doc, DefaultElementID)
	require.NoError(t, err)
	assert.Same(t, existing, rules)
	assert.Empty(t, doc.created)

	// idempotent creation
	first, err := Ensure(doc, "other")
	require.NoError(t, err)
	second, err := Ensure(doc, "other")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, []string{"other"}, doc.created)
}

func TestEnsureDefaultID(t *testing.T) {
	doc := &fakeDocument{elements: map[string]fakeElement{}}

	_, err := Ensure(doc, "")
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultElementID}, doc.created)
}

func TestEnsureNilDocument(t *testing.T) {
	rules, err := Ensure(nil, DefaultElementID)
	require.NoError(t, err)
	assert.Nil(t, rules)
}

func TestEnsureCreateFails(t *testing.T) {
	boom := errors.New("no head")
	doc := &fakeDocument{elements: map[string]fakeElement{}, createErr: boom}

	_, err := Ensure(doc, DefaultElementID)
	require.ErrorIs(t, err, boom)
}

func TestSinkFor(t *testing.T) {
	sink, err := SinkFor(nil, DefaultElementID)
	require.NoError(t, err)
	assert.Equal(t, NullSink{}, sink)
	assert.NoError(t, sink.Insert(".z-1{a:b}"))

	doc := &fakeDocument{elements: map[string]fakeElement{}}
	sink, err = SinkFor(doc, DefaultElementID)
	require.NoError(t, err)

	sheet, ok := sink.(*SheetSink)
	require.True(t, ok)
	require.NoError(t, sheet.Insert(".z-1{a:b}"))
	assert.Equal(t, []string{".z-1{a:b}"}, doc.elements[DefaultElementID].rules.inserted)
}

func TestSheetSinkRejects(t *testing.T) {
	sink := NewSheetSink(&fakeRules{reject: true})
	assert.ErrorIs(t, sink.Insert(".z-1{a:b}"), ErrRuleRejected)
}
