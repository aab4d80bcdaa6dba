package analytics

// DefaultMetrics returns the evaluation table for the models backing the
// classifier, as published by the modeling team.
func DefaultMetrics() []ModelMetric {
	return []ModelMetric{
		{Name: "BERT-base-uncased (Fine-tuned)", Accuracy: "92.3%", F1: "0.925"},
		{Name: "XGBoost Classifier (Stacked)", Accuracy: "93.1%", F1: "0.932"},
	}
}
