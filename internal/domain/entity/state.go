package entity

// AlState is one of the 58 Algerian provinces. The stored form uses
// underscore-delimited spellings, matching the persisted records.
type AlState string

const (
	StateAdrar             AlState = "Adrar"
	StateChlef             AlState = "Chlef"
	StateLaghouat          AlState = "Laghouat"
	StateOumElBouaghi      AlState = "Oum_El_Bouaghi"
	StateBatna             AlState = "Batna"
	StateBejaia            AlState = "Bejaia"
	StateBiskra            AlState = "Biskra"
	StateBechar            AlState = "Bechar"
	StateBlida             AlState = "Blida"
	StateBouira            AlState = "Bouira"
	StateTamanrasset       AlState = "Tamanrasset"
	StateTebessa           AlState = "Tebessa"
	StateTlemcen           AlState = "Tlemcen"
	StateTiaret            AlState = "Tiaret"
	StateTiziOuzou         AlState = "Tizi_Ouzou"
	StateAlger             AlState = "Alger"
	StateDjelfa            AlState = "Djelfa"
	StateJijel             AlState = "Jijel"
	StateSetif             AlState = "Setif"
	StateSaida             AlState = "Saida"
	StateSkikda            AlState = "Skikda"
	StateSidiBelAbbes      AlState = "Sidi_Bel_Abbes"
	StateAnnaba            AlState = "Annaba"
	StateGuelma            AlState = "Guelma"
	StateConstantine       AlState = "Constantine"
	StateMedea             AlState = "Medea"
	StateMostaganem        AlState = "Mostaganem"
	StateMSila             AlState = "MSila"
	StateMascara           AlState = "Mascara"
	StateOuargla           AlState = "Ouargla"
	StateOran              AlState = "Oran"
	StateElBayadh          AlState = "El_Bayadh"
	StateIllizi            AlState = "Illizi"
	StateBordjBouArreridj  AlState = "Bordj_Bou_Arreridj"
	StateBoumerdes         AlState = "Boumerdes"
	StateElTarf            AlState = "El_Tarf"
	StateTindouf           AlState = "Tindouf"
	StateTissemsilt        AlState = "Tissemsilt"
	StateElOued            AlState = "El_Oued"
	StateKhenchela         AlState = "Khenchela"
	StateSoukAhras         AlState = "Souk_Ahras"
	StateTipaza            AlState = "Tipaza"
	StateMila              AlState = "Mila"
	StateAinDefla          AlState = "Ain_Defla"
	StateNaama             AlState = "Naama"
	StateAinTemouchent     AlState = "Ain_Temouchent"
	StateGhardaia          AlState = "Ghardaia"
	StateRelizane          AlState = "Relizane"
	StateTimimoun          AlState = "Timimoun"
	StateBordjBadjiMokhtar AlState = "Bordj_Badji_Mokhtar"
	StateOuledDjellal      AlState = "Ouled_Djellal"
	StateBeniAbes          AlState = "Beni_Abes"
	StateInSalah           AlState = "In_Salah"
	StateInGuezzam         AlState = "In_Guezzam"
	StateTouggourt         AlState = "Touggourt"
	StateDjanet            AlState = "Djanet"
	StateElMGhair          AlState = "El_MGhair"
	StateElMeniaa          AlState = "El_Meniaa"
)

// AllStates lists every province in administrative order.
var AllStates = []AlState{
	StateAdrar, StateChlef, StateLaghouat, StateOumElBouaghi, StateBatna,
	StateBejaia, StateBiskra, StateBechar, StateBlida, StateBouira,
	StateTamanrasset, StateTebessa, StateTlemcen, StateTiaret, StateTiziOuzou,
	StateAlger, StateDjelfa, StateJijel, StateSetif, StateSaida,
	StateSkikda, StateSidiBelAbbes, StateAnnaba, StateGuelma, StateConstantine,
	StateMedea, StateMostaganem, StateMSila, StateMascara, StateOuargla,
	StateOran, StateElBayadh, StateIllizi, StateBordjBouArreridj, StateBoumerdes,
	StateElTarf, StateTindouf, StateTissemsilt, StateElOued, StateKhenchela,
	StateSoukAhras, StateTipaza, StateMila, StateAinDefla, StateNaama,
	StateAinTemouchent, StateGhardaia, StateRelizane, StateTimimoun,
	StateBordjBadjiMokhtar, StateOuledDjellal, StateBeniAbes, StateInSalah,
	StateInGuezzam, StateTouggourt, StateDjanet, StateElMGhair, StateElMeniaa,
}
