package db

type CapDatabase interface {
	Items() ItemInterface
	Caps() CapInterface
	Steps() StepInterface
	Schema() SchemaInterface
	Close() error
}
