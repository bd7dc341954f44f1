package prompt

// Init returns the zsh script that installs the prompt. name is the executable zsh calls back.
func Init(name string) string {
	return "setopt promptsubst;\n" +
		"export VIRTUAL_ENV_DISABLE_PROMPT=1;\n" +
		"PROMPT='$(" + name + " prompt left)';\n" +
		"RPROMPT='$(" + name + " prompt right)';\n"
}
