package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bauru (SP)", "BAURU"},
		{"  são paulo  ", "SAO PAULO"},
		{"Açaí", "ACAI"},
		{"Rendimento médio da produção", "RENDIMENTO MEDIO DA PRODUCAO"},
		{"ALGODÃO HERBÁCEO (EM CAROÇO)", "ALGODAO HERBACEO"},
		{"", ""},
		{"-", "-"},
		{"...", "..."},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeFoldsMojibakeToSameKey(t *testing.T) {
	clean := Normalize("Algodão herbáceo")
	corrupted := Normalize("AlgodÃ£o herbÃ¡ceo")
	if clean != corrupted || clean != "ALGODAO HERBACEO" {
		t.Errorf("keys diverge: clean %q, corrupted %q", clean, corrupted)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Bauru (SP)", "Café (em grão) Arábica", "MAMÃO", "ébano", "já normalizado", "123,45"}
	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

func TestNormalizeNeverPanics(t *testing.T) {
	// Entradas degeneradas: bytes inválidos, controle, só parênteses.
	inputs := []string{string([]byte{0xff, 0xfe}), "\x00", "()", "((()))", "\t\n"}
	for _, in := range inputs {
		_ = Normalize(in)
	}
}

func TestStripParenthetical(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bauru (SP)", "Bauru"},
		{"Bauru", "Bauru"},
		{"Bauru - Zona Rural", "Bauru"},
		{"São José do Rio Preto (SP)", "São José do Rio Preto"},
	}
	for _, c := range cases {
		if got := StripParenthetical(c.in); got != c.want {
			t.Errorf("StripParenthetical(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRepairMojibake(t *testing.T) {
	// "Algodão" com bytes UTF-8 lidos como Latin-1.
	corrupted := "AlgodÃ£o"
	if got := RepairMojibake(corrupted); got != "Algodão" {
		t.Errorf("RepairMojibake(%q) = %q, want %q", corrupted, got, "Algodão")
	}
	// Já correto: devolve como está.
	if got := RepairMojibake("Algodão"); got != "Algodão" {
		t.Errorf("RepairMojibake clean input changed: %q", got)
	}
	// ASCII puro: inalterado.
	if got := RepairMojibake("Soja"); got != "Soja" {
		t.Errorf("RepairMojibake(Soja) = %q", got)
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("ALGODÃO HERBÁCEO"); got != "Algodão Herbáceo" {
		t.Errorf("TitleCase = %q", got)
	}
}
