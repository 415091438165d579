// internal/component/gem.go
package component

// Gem — кристалл опыта, выпадающий из убитого врага.
// В радиусе магнетизма плавно притягивается к игроку.
type Gem struct {
	Value int
}
