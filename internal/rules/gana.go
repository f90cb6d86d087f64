package rules

// Root lists that individual rules test membership in. Entries are upadeshas
// exactly as they appear in the dhatupatha.

// curMit lists curAdi roots that are mit and shorten their vowel before Ric
// (6.4.92).
var curMit = []string{"jYapa~", "yama~", "caha~", "capa~", "raha~", "bala~", "ciY"}

// kutAdi roots make a following affix Nit unless it is Yit or Rit (1.2.1).
var kutAdi = []string{
	"kuwa~", "puwa~", "kuca~", "guja~", "guqa~", "qipa~", "Cura~", "sPuwa~", "muwa~", "truwa~",
	"tuwa~", "cuwa~", "Cuwa~", "juqa~", "juwa~", "kaqa~", "luwa~", "luWa~", "luqa~", "kfqa~",
	"kuqa~", "puqa~", "Guwa~", "tuqa~", "Tuqa~", "sTuqa~", "Kuqa~", "Cuqa~", "sPura~", "sPula~",
	"sPara~", "sPala~", "sPuqa~", "cuqa~", "vruqa~", "kruqa~", "Bfqa~", "huqa~", "gurI~\\", "RU",
	"DU", "gu\\", "Dru\\", "ku\\N", "kUN",
}

// dyutAdi roots may take parasmaipada in luN (1.3.91) and then aN (3.1.55).
var dyutAdi = []string{
	"dyuta~\\", "SvitA~\\", "YimidA~\\", "YizvidA~\\", "YikzvidA~\\", "ruca~\\", "Guwa~\\",
	"ruwa~\\", "luwa~\\", "luWa~\\", "uWa~\\", "SuBa~\\", "kzuBa~\\", "RaBa~\\", "tuBa~\\",
	"sransu~\\", "Dvansu~\\", "Bransu~\\", "BranSu~\\", "sranBu~\\", "vftu~\\", "vfDu~\\",
	"SfDu~\\", "syandU~\\", "kfpU~\\",
}

// vrdbhyah roots may take parasmaipada before sya and san (1.3.92).
var vrdbhyah = []string{"vftu~\\", "vfDu~\\", "SfDu~\\", "SfDu~^", "syandU~\\"}

// tanAdi roots lose a final nasal before a jhal-initial kit/Nit affix (6.4.37)
// and take u as vikarana (3.1.79).
var tanAdi = []string{
	"tanu~^", "zanu~^", "kzaRu~^", "kziRu~^", "fRu~^", "tfRu~^", "GfRu~^", "vanu~\\", "manu~\\",
	"qukf\\Y",
}

// puzAdi roots of divAdi take aN in luN (3.1.55).
var puzAdi = []string{
	"pu\\za~", "Su\\za~", "tu\\za~", "du\\za~", "Sli\\za~", "Sa\\ka~^", "zvi\\dA~", "kru\\Da~",
	"kzu\\Da~", "Su\\Da~", "zi\\Du~", "ra\\Da~", "Ra\\Sa~", "tf\\pa~", "df\\pa~", "dru\\ha~",
	"mu\\ha~", "zRu\\ha~", "zRi\\ha~", "Samu~", "tamu~", "damu~", "Sramu~", "Bramu~", "kzamU~",
	"klamu~", "madI~", "asu~", "yasu~", "jasu~", "tasu~", "dasu~", "vasu~", "basu~", "Basu~",
	"vyuza~", "vyusa~", "byusa~", "busa~", "vusa~", "pyuza~", "pyusa~", "puza~", "pluza~",
	"visa~", "bisa~", "kusa~", "kuSa~", "YizvidA~", "kzamU~z", "musa~", "masI~", "samI~",
	"luwa~", "luWa~", "uca~", "BfSu~", "stima~", "BranSu~", "vfSa~", "kfSa~", "Yitfza~", "hfza~",
	"ruza~", "riza~", "qipa~", "kupa~", "gupa~", "yupa~", "rupa~", "lupa~", "zwupa~", "zwUpa~",
	"luBa~", "kzuBa~", "RaBa~", "tuBa~", "klidU~", "YimidA~", "YikzvidA~", "fDu~", "gfDu~",
}

// yajAdi roots, with vac and svap, take samprasarana before kit (6.1.15).
var yajAdi = []string{
	"ya\\ja~^", "quva\\pa~^", "va\\ha~^", "va\\sa~", "ve\\Y", "vye\\Y", "hve\\Y", "vada~",
	"wuo~Svi",
}

// phaNAdi roots optionally replace their vowel with e and drop the abhyasa
// (6.4.125).
var phaNAdi = []string{
	"PaRa~", "rAjf~^", "wuBrAjf~\\", "wuBrASf~\\", "wuBlASf~\\", "syamu~", "svana~",
}

// mucAdi roots take the num augment before Sa (7.1.59).
var mucAdi = []string{
	"mu\\cx~^", "lu\\px~^", "vidx~^", "li\\pa~^", "zi\\ca~^", "kftI~", "Ki\\da~", "piSa~",
}

// trmphAdi roots take the num augment before Sa by a varttika on 7.1.59.
var trmphAdi = []string{
	"tfnpa~", "tfnPa~", "tunpa~", "tunPa~", "dfnpa~", "dfnPa~", "fnPa~", "gunPa~", "unBa~",
	"SunBa~", "tfnhU~",
}

// radhAdi roots take iw optionally before a val-initial ardhadhatuka affix
// (7.2.45).
var radhAdi = []string{
	"ra\\Da~", "Ra\\Sa~", "tf\\pa~", "df\\pa~", "dru\\ha~", "mu\\ha~", "zRu\\ha~", "zRi\\ha~",
}

// pvAdi roots shorten their vowel before a Sit affix (7.3.80).
var pvAdi = []string{
	"pUY", "lUY", "stFY", "kFY", "vFY", "DUY", "SF", "pF", "vF", "BF", "mF", "dF", "jF", "JF",
	"DF", "nF", "kF", "F", "gF", "jyA\\", "rI\\", "lI\\", "vlI\\", "plI\\", "blI\\",
}

// kradi roots never take iw in liw (7.2.13).
var kradi = []string{
	"qukf\\Y", "sf\\", "quBf\\Y", "vf\\Y", "vf\\N", "zwu\\Y", "dru\\", "sru\\", "Sru\\",
}

// ghu roots are the dA and DA roots (1.1.20).
var ghu = []string{"qudA\\Y", "quDA\\Y", "dA\\R", "do\\", "de\\N", "Dew"}
