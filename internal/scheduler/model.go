package scheduler

// workload: hours one employee carries across every assigned shift
type workload struct {
	employeeID int64
	hours      float64
}

// costs stay unrounded while accumulating; rounding happens once at the end
type costs struct {
	employee float64
	tax      float64
	super    float64
	cash     float64
}
