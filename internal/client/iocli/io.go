package iocli

//go:generate moq -out io_mock.go . IO

// IO ввод и вывод команд клиента. Write позволяет использовать IO
// как io.Writer для flag.FlagSet и tabwriter.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	// ReadInput читает строку с эхом, без завершающих пробелов
	ReadInput(prompt string) (string, error)
	// ReadPassword читает строку без эха, если stdin терминал
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
