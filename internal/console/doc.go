// Package console is the line-oriented input environment of the programs.
//
// A program asks its Console for one line at a time, passing the prompt to
// show. Stdio talks to a real terminal, Scripted replays predetermined lines
// (command-line arguments, test scenarios) and Recorder wraps either one to
// keep a transcript of prompts and inputs.
package console
