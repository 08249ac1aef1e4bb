// SPDX-License-Identifier: MPL-2.0

// Package cli composes process entry points. It wires command-line argument
// decoding (cobra/pflag), a signal-aware context, and error reporting around
// a user-supplied function, so programs don't repeat that boilerplate in
// every main.
//
// A minimal program:
//
//	type args struct {
//		name string
//	}
//
//	func main() {
//		root := cli.New("greet", func(cmd *cobra.Command, a *args) {
//			cmd.Flags().StringVar(&a.name, "name", "", "who to greet")
//		}, func(ctx context.Context, a *args) error {
//			fmt.Println("hello,", a.name)
//			return nil
//		})
//		cli.Run(root, cli.WithVersion("1.0.0"))
//	}
//
// Execution goes through charmbracelet/fang, which supplies styled help and
// error output, --version, and signal handling. Help and version requests
// exit 0; malformed input and user-function failures exit non-zero, printing
// the diagnostic and its cause chain (innermost last) to stderr.
package cli
