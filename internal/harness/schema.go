package harness

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// scenarioSchema constrains decoded scenarios.
// The program disjunction must list every name in programs.Names().
const scenarioSchema = `
#Scenario: {
	name:        string & =~"^[A-Za-z0-9_.-]+$"
	description?: string
	program:     "gcd" | "sum"
	input: [...string]
	run_id?: string & !=""
	expect: {
		output?: string & !=""
		error?:  string & !=""
	}
}
`

// checkSchema unifies the scenario with #Scenario and reports every
// violation, one per line.
func checkSchema(s *Scenario) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(scenarioSchema, cue.Filename("scenario.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling scenario schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Scenario"))

	value := def.Unify(ctx.Encode(s.toCUEMap()))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return schemaError(err)
	}
	return nil
}

// schemaError flattens CUE errors into "path: message" lines.
func schemaError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		path := strings.Join(trimDefinition(e.Path()), ".")
		format, args := e.Msg()
		msg := fmt.Sprintf(format, args...)
		if path == "" {
			lines = append(lines, msg)
			continue
		}
		lines = append(lines, path+": "+msg)
	}
	return fmt.Errorf("%s", strings.Join(lines, "; "))
}

// trimDefinition drops the leading "#Scenario" path element.
func trimDefinition(path []string) []string {
	if len(path) > 0 && path[0] == "#Scenario" {
		return path[1:]
	}
	return path
}
