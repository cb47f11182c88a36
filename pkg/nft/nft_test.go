package nft_test

import (
	"strings"
	"testing"

	"github.com/joshuapare/nftkit/pkg/ast"
	"github.com/joshuapare/nftkit/pkg/evaluator"
	"github.com/joshuapare/nftkit/pkg/nft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `{
  "nftables": [
    {"add": {"table": {"family": "ip", "name": "filter"}}},
    {"add": {"chain": {"family": "ip", "table": "filter", "name": "input",
      "type": "filter", "hook": "input", "prio": 0, "policy": "accept"}}},
    {"add": {"rule": {"family": "ip", "table": "filter", "chain": "input",
      "expr": [
        {"match": {"left": {"payload": {"name": "ip", "field": "saddr"}},
                   "right": "10.0.0.1", "op": "=="}},
        {"accept": null}
      ]}}}
  ]
}`

func TestParse_SampleDocument(t *testing.T) {
	result, err := nft.ParseBytes([]byte(sampleDoc), nft.Options{Name: "sample"})
	require.NoError(t, err)
	require.Len(t, result.Commands, 3)

	assert.Equal(t, ast.ObjTable, result.Commands[0].ObjKind)
	assert.Equal(t, ast.ObjChain, result.Commands[1].ObjKind)
	assert.Equal(t, ast.ObjRule, result.Commands[2].ObjKind)
	assert.True(t, result.Commands[1].IsBaseChain)
	require.Len(t, result.Commands[2].Statements, 2)
}

func TestParse_MissingNftablesKey(t *testing.T) {
	_, err := nft.ParseBytes([]byte(`{"foo": []}`), nft.Options{})
	require.Error(t, err)
	var derr *nft.DocumentError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, -1, derr.Index)
}

func TestParse_NftablesMustBeArray(t *testing.T) {
	_, err := nft.ParseBytes([]byte(`{"nftables": {}}`), nft.Options{})
	require.Error(t, err)
}

func TestParse_AbortsWholeDocumentOnElementFailure(t *testing.T) {
	doc := `{"nftables": [
    {"add": {"table": {"family": "ip", "name": "filter"}}},
    {"add": {"table": {"family": "bogus", "name": "x"}}}
  ]}`
	_, err := nft.ParseBytes([]byte(doc), nft.Options{})
	require.Error(t, err)
	var derr *nft.DocumentError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 1, derr.Index)
}

func TestParse_EvaluatorRejectionAbortsDocument(t *testing.T) {
	doc := `{"nftables": [
    {"add": {"element": {"family": "ip", "table": "filter", "name": "unknown",
      "elem": ["10.0.0.1"]}}}
  ]}`
	_, err := nft.ParseBytes([]byte(doc), nft.Options{Evaluator: evaluator.NewReference()})
	require.Error(t, err)
	var derr *nft.DocumentError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 0, derr.Index)
	assert.True(t, strings.Contains(derr.Error(), "index 0"))
}
