package appointment

// GenerateSlots produz a sequência ordenada de slots de início dentro da
// janela [startTime, endTime), em intervalos fixos da largura configurada.
// O slot que terminaria exatamente no fim da janela é o último incluído;
// a borda final em si fica de fora (janela semiaberta).
func (r Rules) GenerateSlots(startTime, endTime string) ([]string, error) {
	startMin, err := TimeToMinutes(startTime)
	if err != nil {
		return nil, err
	}
	endMin, err := TimeToMinutes(endTime)
	if err != nil {
		return nil, err
	}

	slots := []string{}
	for m := startMin; m < endMin; m += r.SlotWidthMin {
		slots = append(slots, MinutesToTime(m))
	}

	return slots, nil
}
