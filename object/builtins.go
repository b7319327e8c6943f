package object

import "fmt"

// Builtins is a collection of predefined built-in functions available for use within the language.
var Builtins = []struct {
	// The name of the built-in function.
	Name string

	// The definition (and implementation) of the built-in function.
	Builtin *Builtin
}{
	{
		"len",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			switch arg := args[0].(type) {
			case *String:
				return &Integer{Value: int64(len(arg.Value))}

			case *Array:
				return &Integer{Value: int64(len(arg.Elements))}

			default:
				return newError("argument to `len` not supported, got %s", args[0].Type())
			}
		},
		},
	},
	{
		"first",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			if args[0].Type() != ARRAY_OBJ {
				return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
			}
			arr := args[0].(*Array)
			if len(arr.Elements) > 0 {
				return arr.Elements[0]
			}
			return nil
		},
		},
	},
	{
		"last",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			if args[0].Type() != ARRAY_OBJ {
				return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
			}
			arr := args[0].(*Array)
			length := len(arr.Elements)
			if length > 0 {
				return arr.Elements[length-1]
			}
			return nil
		},
		},
	},
	{
		"rest",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			if args[0].Type() != ARRAY_OBJ {
				return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
			}
			arr := args[0].(*Array)
			length := len(arr.Elements)
			if length > 0 {
				newElements := make([]Object, length-1)
				copy(newElements, arr.Elements[1:length])
				return &Array{Elements: newElements}
			}
			return nil
		},
		},
	},
	{
		"push",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 2 {
				return newError("wrong number of arguments. got=%d, want=2", len(args))
			}
			if args[0].Type() != ARRAY_OBJ {
				return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
			}
			arr := args[0].(*Array)
			length := len(arr.Elements)
			newElements := make([]Object, length+1)
			copy(newElements, arr.Elements)
			newElements[length] = args[1]

			return &Array{Elements: newElements}
		},
		},
	},
	{
		"print",
		&Builtin{Fn: func(args ...Object) Object {
			for _, arg := range args {
				fmt.Print(arg.Inspect(), " ")
			}
			fmt.Println()
			return nil
		},
		},
	},
	{
		"str",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			if args[0].Type() != INTEGER_OBJ {
				return newError("argument to `str` must be INTEGER, got %s", args[0].Type())
			}
			return &String{Value: args[0].Inspect()}
		},
		},
	},
	{
		"concat",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 2 {
				return newError("wrong number of arguments. got=%d, want=2", len(args))
			}
			if args[0].Type() != args[1].Type() {
				return newError("arguments to `concat` must be the same type, got %s and %s", args[0].Type(), args[1].Type())
			}
			switch left := args[0].(type) {
			case *String:
				right := args[1].(*String)
				return &String{Value: left.Value + right.Value}
			case *Array:
				right := args[1].(*Array)
				newElements := make([]Object, 0, len(left.Elements)+len(right.Elements))
				newElements = append(newElements, left.Elements...)
				newElements = append(newElements, right.Elements...)
				return &Array{Elements: newElements}
			default:
				return newError("arguments to `concat` must be STRING or ARRAY, got %s", args[0].Type())
			}
		},
		},
	},
	{
		"zip",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 2 {
				return newError("wrong number of arguments. got=%d, want=2", len(args))
			}
			if args[0].Type() != ARRAY_OBJ || args[1].Type() != ARRAY_OBJ {
				return newError("arguments to `zip` must be ARRAY, got %s and %s", args[0].Type(), args[1].Type())
			}
			left := args[0].(*Array)
			right := args[1].(*Array)

			n := len(left.Elements)
			if len(right.Elements) < n {
				n = len(right.Elements)
			}

			pairs := make(map[HashKey]HashPair, n)
			for i := 0; i < n; i++ {
				key := left.Elements[i]
				value := right.Elements[i]

				hashable, ok := key.(Hashable)
				if !ok {
					return newError("in builtin function `zip`, unusable as hash key: %s", key.Type())
				}
				pairs[hashable.HashKey()] = HashPair{Key: key, Value: value}
			}
			return &Hash{Pairs: pairs}
		},
		},
	},
	{
		"set",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			if args[0].Type() != ARRAY_OBJ {
				return newError("argument to `set` must be ARRAY, got %s", args[0].Type())
			}
			arr := args[0].(*Array)

			seen := make(map[HashKey]Object)
			order := make([]HashKey, 0, len(arr.Elements))
			for _, e := range arr.Elements {
				hashable, ok := e.(Hashable)
				if !ok {
					return newError("in builtin function `set`, unusable as hash key: %s", e.Type())
				}
				key := hashable.HashKey()
				if _, ok := seen[key]; !ok {
					order = append(order, key)
				}
				seen[key] = e
			}

			setElements := make([]Object, len(order))
			for i, key := range order {
				setElements[i] = seen[key]
			}
			return &Array{Elements: setElements}
		},
		},
	},
	{
		"type",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			return &String{Value: string(args[0].Type())}
		},
		},
	},
	{
		"cut",
		&Builtin{Fn: builtinCut},
	},
	{
		"re",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newError("wrong number of arguments. got=%d, want=1", len(args))
			}
			switch arg := args[0].(type) {
			case *String:
				runes := []rune(arg.Value)
				for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
					runes[i], runes[j] = runes[j], runes[i]
				}
				return &String{Value: string(runes)}
			case *Array:
				length := len(arg.Elements)
				reversed := make([]Object, length)
				for i, e := range arg.Elements {
					reversed[length-1-i] = e
				}
				return &Array{Elements: reversed}
			default:
				return newError("argument to `re` must be STRING or ARRAY, got %s", args[0].Type())
			}
		},
		},
	},
}

// builtinCut implements `cut`, a substring/subarray operation taking either
// two bounds (start, end-of-value) or three (start, end).
func builtinCut(args ...Object) Object {
	numArgs := len(args)
	if numArgs != 2 && numArgs != 3 {
		return newError("wrong number of arguments. got=%d, want=2 or 3", numArgs)
	}

	switch arg := args[0].(type) {
	case *String:
		start, end, err := cutBounds(args[1:], len([]rune(arg.Value)))
		if err != nil {
			return err
		}
		runes := []rune(arg.Value)
		return &String{Value: string(runes[start:end])}

	case *Array:
		start, end, err := cutBounds(args[1:], len(arg.Elements))
		if err != nil {
			return err
		}
		newElements := make([]Object, end-start)
		copy(newElements, arg.Elements[start:end])
		return &Array{Elements: newElements}

	default:
		return newError("first argument to `cut` must be STRING or ARRAY, got %s", args[0].Type())
	}
}

// cutBounds validates and resolves the start/end bounds for `cut` against a
// collection of the given length.
func cutBounds(bounds []Object, length int) (int, int, *Error) {
	start := 0
	end := length

	if len(bounds) >= 1 {
		s, ok := bounds[0].(*Integer)
		if !ok {
			return 0, 0, newError("start argument to `cut` must be INTEGER, got %s", bounds[0].Type())
		}
		if s.Value < 0 || int(s.Value) >= length {
			return 0, 0, newError("start index out of range: %d", s.Value)
		}
		start = int(s.Value)
	}

	if len(bounds) == 2 {
		e, ok := bounds[1].(*Integer)
		if !ok {
			return 0, 0, newError("end argument to `cut` must be INTEGER, got %s", bounds[1].Type())
		}
		if e.Value < int64(start) || int(e.Value) > length {
			return 0, 0, newError("end index out of range: %d", e.Value)
		}
		end = int(e.Value)
	}

	return start, end, nil
}

func newError(format string, a ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

// GetBuiltinByName retrieves a built-in function definition by its name from the predefined [Builtins] collection.
//
// It returns a pointer to the corresponding [Builtin] or nil if the name is not found.
func GetBuiltinByName(name string) *Builtin {
	for _, def := range Builtins {
		if def.Name == name {
			return def.Builtin
		}
	}
	return nil
}
