package dhatupatha

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"
)

//go:embed schema.cue
var schemaCUE []byte

// Load error codes.
const (
	ErrCodeNotFound    = "L001" // Path not found
	ErrCodeNoFiles     = "L002" // No CUE files found
	ErrCodeLoadFailed  = "L003" // CUE load failed
	ErrCodeBuildFailed = "L004" // CUE build failed
	ErrCodeSchema      = "L005" // Entry violates the schema
)

// LoadError reports a CUE lexicon that could not be read.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadCUE loads every CUE file in dir, unifies the result with the lexicon
// schema and returns the entries sorted by code.
func LoadCUE(dir string) (*Lexicon, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("lexicon directory: %v", err)}
	}
	if !info.IsDir() {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.cue"))
	if err != nil || len(files) == 0 {
		return nil, &LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, &LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}
	}

	schema := ctx.CompileBytes(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, &LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("lexicon schema: %v", err)}
	}
	value := ctx.BuildInstance(inst).Unify(schema)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: err.Error(), Pos: value.Pos()}
	}

	iter, err := value.LookupPath(cue.ParsePath("dhatu")).Fields()
	if err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: fmt.Sprintf("dhatu: %v", err)}
	}
	var dhatus []Dhatu
	for iter.Next() {
		entry := iter.Value()
		upadesha, err := entry.LookupPath(cue.ParsePath("upadesha")).String()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeSchema, Message: fmt.Sprintf("dhatu %s: %v", iter.Selector(), err), Pos: entry.Pos()}
		}
		artha, err := entry.LookupPath(cue.ParsePath("artha")).String()
		if err != nil {
			return nil, &LoadError{Code: ErrCodeSchema, Message: fmt.Sprintf("dhatu %s: %v", iter.Selector(), err), Pos: entry.Pos()}
		}
		dhatus = append(dhatus, Dhatu{Code: iter.Selector().Unquoted(), Upadesha: upadesha, Artha: artha})
	}
	if len(dhatus) == 0 {
		return nil, &LoadError{Code: ErrCodeSchema, Message: "no dhatu entries"}
	}
	slices.SortStableFunc(dhatus, func(a, b Dhatu) int { return strings.Compare(a.Code, b.Code) })

	lex, err := New(dhatus)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeSchema, Message: err.Error()}
	}
	return lex, nil
}
