package args_test

import (
	"errors"
	"fmt"

	"github.com/reeflective/args"
)

func Example() {
	verbose := args.Opt[int]("verbose|v+", args.Desc("Increase verbosity"))
	output := args.OptDefault("output|o", "-", args.Desc("Output file"))
	files := args.Arg[[]string]("files", args.Required(), args.Desc("Files to process"))

	set, err := args.NewSet([]args.Spec{verbose, output, files})
	if err != nil {
		panic(err)
	}

	res, err := set.Parse([]string{"proc", "-vv", "a.txt", "--output", "out.txt", "b.txt"})
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Options["verbose"], res.Options["output"])
	fmt.Println(args.MustGet[[]string](res.Operands, "files"))

	// Output:
	// 2 out.txt
	// [a.txt b.txt]
}

func ExampleSet_Parse_errors() {
	set := args.MustSet([]args.Spec{
		args.Opt[bool]("verbose|v"),
		args.Arg[string]("file"),
	})

	_, err := set.Parse([]string{"prog", "--verbos", "a.txt"})

	var parseErr *args.Error
	if errors.As(err, &parseErr) {
		fmt.Println(errors.Is(err, args.ErrUnrecognizedOption))
		fmt.Println(parseErr.Token)
		fmt.Println(err)
	}

	fmt.Println(set.Usage("prog"))

	// Output:
	// true
	// --verbos
	// unrecognized option: --verbos (did you mean --verbose?)
	// prog <file> [options]
}
