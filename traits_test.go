// traits_test.go - small trait vocabularies shared by the package tests.
package xgxresult

import "strconv"

// fileCode mirrors a typical storage vocabulary.
type fileCode int

const (
	fileOK fileCode = iota
	fileNotFound
	fileBadFormat
)

type fileTrait struct{}

func (fileTrait) Success() fileCode      { return fileOK }
func (fileTrait) DefaultError() fileCode { return fileNotFound }
func (fileTrait) CodeToString(c fileCode) string {
	switch c {
	case fileOK:
		return "ok"
	case fileNotFound:
		return "not found"
	case fileBadFormat:
		return "bad format"
	}
	return "unknown"
}

type fileResult = Result[fileTrait, fileCode]

// parseCode is unsigned and uses a non-zero success code.
type parseCode uint8

const (
	parseDone   parseCode = 200
	parseSyntax parseCode = 1
	parseEOF    parseCode = 255
)

type parseTrait struct{}

func (parseTrait) Success() parseCode      { return parseDone }
func (parseTrait) DefaultError() parseCode { return parseSyntax }
func (parseTrait) CodeToString(c parseCode) string {
	switch c {
	case parseSyntax:
		return "syntax error"
	case parseEOF:
		return "unexpected eof"
	}
	return "parse code " + strconv.Itoa(int(c))
}

type parseResult = Result[parseTrait, parseCode]

// apiCode has negative failure codes.
type apiCode int32

const (
	apiOK       apiCode = 0
	apiUpstream apiCode = -7
	apiInternal apiCode = -1
)

type apiTrait struct{}

func (apiTrait) Success() apiCode      { return apiOK }
func (apiTrait) DefaultError() apiCode { return apiInternal }
func (apiTrait) CodeToString(c apiCode) string {
	switch c {
	case apiUpstream:
		return "upstream failed"
	case apiInternal:
		return "internal"
	}
	return "api"
}

type apiResult = Result[apiTrait, apiCode]

// hashCode spans the whole uint64 range.
type hashCode uint64

const (
	hashOK       hashCode = 0
	hashMismatch hashCode = 1 << 63
)

type hashTrait struct{}

func (hashTrait) Success() hashCode      { return hashOK }
func (hashTrait) DefaultError() hashCode { return hashMismatch }
func (hashTrait) CodeToString(c hashCode) string {
	if c == hashMismatch {
		return "digest mismatch"
	}
	return "hash"
}
