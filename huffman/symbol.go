package huffman

// DCSymbol is a DC size-category, in [0,11].
type DCSymbol = uint8

// ACSymbol is a (run, size) pair from the AC run-length alphabet: run in
// [0,15], size in [0,10], including the (0,0) EOB and (15,0) ZRL symbols.
type ACSymbol struct {
	Run  uint8
	Size uint8
}

// dcSymbolOrder lists every DC size category in ascending order, for
// deterministic tree construction independent of map iteration order.
var dcSymbolOrder = func() []DCSymbol {
	order := make([]DCSymbol, 12)
	for i := range order {
		order[i] = DCSymbol(i)
	}
	return order
}()

// acSymbolOrder lists every (run, size) pair in a fixed deterministic
// order, run-major then size-minor, for the same reason.
var acSymbolOrder = func() []ACSymbol {
	var order []ACSymbol
	for run := 0; run <= 15; run++ {
		for size := 0; size <= 10; size++ {
			order = append(order, ACSymbol{Run: uint8(run), Size: uint8(size)})
		}
	}
	return order
}()
