package main

import (
	"os"

	"golang.org/x/term"
)

// repl drives the six502 debug hook from an interactive terminal using
// golang.org/x/term for raw-mode line editing, mirroring the raw-mode
// setup/teardown used elsewhere in the retrieval pack for stdin-driven
// hosts.
type repl struct {
	fd       int
	oldState *term.State
	term     *term.Terminal
}

func newREPL() (*repl, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	t := term.NewTerminal(readWriter{os.Stdin, os.Stdout}, "six502> ")
	return &repl{fd: fd, oldState: oldState, term: t}, nil
}

// readWriter adapts separate stdin/stdout handles to the io.ReadWriter
// term.NewTerminal requires.
type readWriter struct {
	r *os.File
	w *os.File
}

func (rw readWriter) Read(p []byte) (int, error)  { return rw.r.Read(p) }
func (rw readWriter) Write(p []byte) (int, error) { return rw.w.Write(p) }

// Prompt implements six502.DebugHook: print status, show the prompt,
// read one line of debugger input.
func (r *repl) Prompt(status string) string {
	r.term.Write([]byte(status + "\n"))
	line, err := r.term.ReadLine()
	if err != nil {
		return "Q"
	}
	return line
}

func (r *repl) Close() {
	term.Restore(r.fd, r.oldState)
}
