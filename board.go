package dispatch

// Unassigned is the label shown for an address with no driver.
const Unassigned = "unassigned"

// Assignment is an address joined with the driver it names.
// Assigned is false when no current driver has that name, which is normal
// after drivers are deleted.
type Assignment struct {
	Address  *Address `json:"address"`
	Color    string   `json:"color,omitempty"`
	Assigned bool     `json:"assigned"`
}

// Label returns the driver name, or Unassigned when the address has none.
func (a *Assignment) Label() string {
	if a.Address.Driver == "" {
		return Unassigned
	}
	return a.Address.Driver
}

// ResolveBoard joins each address with the color of the driver it names.
func ResolveBoard(drivers []*Driver, addresses []*Address) []*Assignment {
	colors := make(map[string]string, len(drivers))
	for _, d := range drivers {
		colors[d.Name] = d.Color
	}

	board := make([]*Assignment, 0, len(addresses))
	for _, a := range addresses {
		color, ok := colors[a.Driver]
		board = append(board, &Assignment{Address: a, Color: color, Assigned: ok})
	}
	return board
}
