package main

import (
	"fmt"
)

// completionScript asks `corefclean complete` for commands and flags and
// falls back to file names for the input, gold and database arguments.
const completionScript = `#! /bin/bash

_corefclean() {
    local cur="${COMP_WORDS[COMP_CWORD]}"

    local suggestions
    suggestions=$(corefclean complete -- "${COMP_WORDS[@]}") || return

    if [[ -n "$suggestions" ]]; then
        COMPREPLY=( $(compgen -W "$suggestions" -- "$cur") )
        return
    fi

    COMPREPLY=( $(compgen -f -- "$cur") )
}

complete -o filenames -F _corefclean corefclean
`

func bashCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, completionScript)
	return err
}
