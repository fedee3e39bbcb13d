package entity

// Lot registro de inventario por (producto, fecha de vencimiento), con dos contadores:
// QtyBack (trastienda) y QtyDisplay (góndola). Existe a lo sumo una fila por par
// (ProductID, Exp); esa pareja es la unidad de reconciliación.
//
// Exp es una fecha calendario en formato ISO (YYYY-MM-DD), normalizada a UTC por el caller.
// Comparar Exp como string equivale a comparar cronológicamente.
//
// El estado operativo (vencido, reponer, etc.) NO se persiste: se deriva siempre de
// Exp, QtyBack, QtyDisplay y el "hoy" que aporte el caller.
type Lot struct {
	ID         int64
	ProductID  int64
	Exp        string
	QtyBack    int
	QtyDisplay int
}
