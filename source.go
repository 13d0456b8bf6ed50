package autoresolve

// Source supplies the ordered sequence of implementation types to scan.
// Enumerating types (package walking, code generation, explicit lists) is
// left to the Source; the resolver only consumes its output.
//
// Example:
//
//	src := autoresolve.Types{
//	    autoresolve.Describe[*Widget](autoresolve.Interface[IWidget](), autoresolve.ResolveAsSingleton),
//	}
type Source interface {
	Types() ([]TypeInfo, error)
}

// ConditionalSource is an optional interface for sources that should only be
// scanned in some configurations.
//
// Example:
//
//	type DebugTools struct{}
//
//	func (DebugTools) ShouldScan() bool { return os.Getenv("APP_DEBUG") != "" }
type ConditionalSource interface {
	Source
	ShouldScan() bool
}

// Types is a fixed, in-order Source. A nil Types is an empty sequence.
type Types []TypeInfo

// Types returns the slice itself.
func (t Types) Types() ([]TypeInfo, error) {
	return t, nil
}

// SourceFunc adapts a function to a Source.
type SourceFunc func() ([]TypeInfo, error)

// Types calls f.
func (f SourceFunc) Types() ([]TypeInfo, error) {
	if f == nil {
		return nil, &InvalidInputError{Argument: "source func"}
	}
	return f()
}

// Concat joins sources into one, scanned in argument order. The usual layout is
// the application's own types first, followed by the types of the modules it
// depends on.
//
// Conditional sources reporting ShouldScan() == false contribute nothing.
func Concat(sources ...Source) Source {
	return concatSource(sources)
}

type concatSource []Source

func (c concatSource) Types() ([]TypeInfo, error) {
	var all []TypeInfo
	for _, src := range c {
		if src == nil {
			return nil, &InvalidInputError{Argument: "source"}
		}
		if cond, ok := src.(ConditionalSource); ok && !cond.ShouldScan() {
			continue
		}

		types, err := src.Types()
		if err != nil {
			return nil, err
		}
		all = append(all, types...)
	}
	return all, nil
}

// scan reads src, honoring ConditionalSource.
func scan(src Source) ([]TypeInfo, error) {
	if cond, ok := src.(ConditionalSource); ok && !cond.ShouldScan() {
		return nil, nil
	}
	return src.Types()
}
