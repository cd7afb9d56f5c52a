package game

// Order is the turn order of the active players. Its methods never modify the
// receiver; rotating or removing a player yields a new Order.
type Order []*Player

func (o Order) IndexOf(player *Player) int {
	for index, p := range o {
		if p == player {
			return index
		}
	}
	return -1
}

// RotateTo returns the order starting with player. An unknown player leaves
// the order unchanged.
func (o Order) RotateTo(player *Player) Order {
	index := o.IndexOf(player)
	rotated := make(Order, 0, len(o))
	if index == -1 {
		return append(rotated, o...)
	}
	rotated = append(rotated, o[index:]...)
	return append(rotated, o[:index]...)
}

// Next returns the player seated after player, wrapping around.
func (o Order) Next(player *Player) *Player {
	count := len(o)
	if count == 0 {
		return nil
	}
	index := o.IndexOf(player)
	return o[(index+1+count)%count]
}

func (o Order) Without(player *Player) Order {
	remaining := make(Order, 0, len(o))
	for _, p := range o {
		if p != player {
			remaining = append(remaining, p)
		}
	}
	return remaining
}

func (o Order) Humans() int {
	count := 0
	for _, p := range o {
		if p.Human() {
			count++
		}
	}
	return count
}

func (o Order) Names() []string {
	names := make([]string, 0, len(o))
	for _, p := range o {
		names = append(names, p.Name())
	}
	return names
}
