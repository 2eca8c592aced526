package dataset

// Table é um dataset quantitativo carregado: linhas por cidade normalizada,
// colunas por chave normalizada de produto. HeaderMap preserva o nome de
// exibição original de cada coluna de produto; quando duas colunas colidem
// na forma normalizada, a última sobrescreve a entrada (ambiguidade
// conhecida do dado de origem).
type Table struct {
	Key       string
	Rows      map[string]map[string]string
	HeaderMap map[string]string
}

// Row devolve a linha da cidade, se registrada.
func (t *Table) Row(cityKey string) (map[string]string, bool) {
	row, ok := t.Rows[cityKey]
	return row, ok
}

// Value devolve o valor bruto de um produto para uma cidade. O segundo
// retorno distingue "cidade sem linha" de "produto sem valor": ok indica que
// a cidade existe; valor ausente volta como string vazia.
func (t *Table) Value(cityKey, productKey string) (string, bool) {
	row, ok := t.Rows[cityKey]
	if !ok {
		return "", false
	}
	return row[productKey], true
}

// ProductKeys lista as colunas de produto da tabela.
func (t *Table) ProductKeys() []string {
	keys := make([]string, 0, len(t.HeaderMap))
	for k := range t.HeaderMap {
		keys = append(keys, k)
	}
	return keys
}
