package circuit

// Snapshot is a read-only capture of the board's logical state, taken on
// the frame-loop goroutine and handed to observers such as the debug
// inspector. It shares nothing with the live graph.
type Snapshot struct {
	Buttons []ButtonState `json:"buttons"`
	Gates   []GateState   `json:"gates"`
	LEDs    []LEDState    `json:"leds"`
	Wires   []WireState   `json:"wires"`
}

type ButtonState struct {
	ID    string `json:"id"`
	State bool   `json:"state"`
}

type GateState struct {
	ID     string   `json:"id"`
	Kind   string   `json:"kind"`
	Inputs []string `json:"inputs"`
	Output bool     `json:"output"`
}

type LEDState struct {
	ID string `json:"id"`
	On bool   `json:"on"`
}

type WireState struct {
	ID     string `json:"id"`
	From   string `json:"from"`
	To     string `json:"to"`
	Slot   int    `json:"slot"`
	Active bool   `json:"active"`
}

// Snapshot captures the current logical state of every circuit component.
func (b *Board) Snapshot() Snapshot {
	snap := Snapshot{
		Buttons: make([]ButtonState, 0, len(b.buttons)),
		Gates:   make([]GateState, 0, len(b.gates)),
		LEDs:    make([]LEDState, 0, len(b.leds)),
		Wires:   make([]WireState, 0, len(b.connections)),
	}
	for _, btn := range b.buttons {
		snap.Buttons = append(snap.Buttons, ButtonState{ID: btn.ID(), State: btn.State()})
	}
	for _, gate := range b.gates {
		inputs := make([]string, 0, len(gate.Inputs()))
		for _, in := range gate.Inputs() {
			inputs = append(inputs, in.ID())
		}
		snap.Gates = append(snap.Gates, GateState{
			ID:     gate.ID(),
			Kind:   gate.Kind().String(),
			Inputs: inputs,
			Output: gate.Result(),
		})
	}
	for _, led := range b.leds {
		snap.LEDs = append(snap.LEDs, LEDState{ID: led.ID(), On: led.IsOn()})
	}
	for _, conn := range b.connections {
		snap.Wires = append(snap.Wires, WireState{
			ID:     conn.ID(),
			From:   conn.FromID(),
			To:     conn.ToID(),
			Slot:   conn.Slot(),
			Active: conn.Active(),
		})
	}
	return snap
}
